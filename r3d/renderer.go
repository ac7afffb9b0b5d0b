package r3d

import (
	"github.com/go-gl/gl/v4.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"

	"github.com/mogaika/solarsystem/config"
	"github.com/mogaika/solarsystem/rendercontext"
	"github.com/mogaika/solarsystem/scene"
)

// GLRenderer draws scene meshes with the solar program into the current
// OpenGL context.
type GLRenderer struct {
	cfg config.Render

	program   *SolarProgram
	meshes    map[scene.MeshID]*Mesh
	resources rendercontext.Store
}

func NewGLRenderer(cfg config.Render) *GLRenderer {
	return &GLRenderer{
		cfg:    cfg,
		meshes: make(map[scene.MeshID]*Mesh),
	}
}

// Init loads OpenGL functions, compiles the program and builds the static
// meshes. The context has to be current.
func (r *GLRenderer) Init() error {
	if err := gl.Init(); err != nil {
		return errors.Wrap(err, "failed to initialize OpenGL")
	}
	log.Infof("OpenGL version %q", gl.GoStr(gl.GetString(gl.VERSION)))

	program, err := LoadSolarProgram()
	if err != nil {
		return errors.Wrap(err, "solar program")
	}
	r.program = program
	r.resources.Use(program)
	gl.UseProgram(program.Id)

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	c := r.cfg.ClearColor
	gl.ClearColor(c[0], c[1], c[2], c[3])

	cube, err := NewCube()
	if err != nil {
		r.Release()
		return err
	}
	r.resources.Use(cube)
	r.meshes[scene.MeshCube] = cube

	ground, err := NewGround(r.cfg.GroundHalfExtent, r.cfg.GroundStep)
	if err != nil {
		r.Release()
		return err
	}
	r.resources.Use(ground)
	r.meshes[scene.MeshGround] = ground

	return nil
}

func (r *GLRenderer) Viewport(w, h int) {
	gl.Viewport(0, 0, int32(w), int32(h))
}

func (r *GLRenderer) BeginFrame() {
	gl.UseProgram(r.program.Id)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (r *GLRenderer) SetProjection(m mgl32.Mat4) {
	gl.UniformMatrix4fv(r.program.UProj, 1, false, &m[0])
}

func (r *GLRenderer) SetView(m mgl32.Mat4) {
	gl.UniformMatrix4fv(r.program.UView, 1, false, &m[0])
}

func (r *GLRenderer) SetShadingMode(mode int32) {
	gl.Uniform1i(r.program.UShadingMode, mode)
}

func (r *GLRenderer) Draw(mesh scene.MeshID, model mgl32.Mat4) {
	m, ok := r.meshes[mesh]
	if !ok {
		log.Warnf("Skipping draw of unknown mesh %v", mesh)
		return
	}
	gl.UniformMatrix4fv(r.program.UModel, 1, false, &model[0])
	m.Draw()
}

// Release frees the program and the mesh buffers. Safe to call more than once.
func (r *GLRenderer) Release() {
	r.resources.Release()
	r.meshes = make(map[scene.MeshID]*Mesh)
}
