package r3d

import (
	_ "embed"

	"github.com/go-gl/gl/v4.3-core/gl"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

//go:embed shaders/v_shader.glsl
var solarVertexShader string

//go:embed shaders/f_shader.glsl
var solarFragmentShader string

var log = logrus.WithField("component", "r3d")

// SolarProgram is the program drawing every mesh of the scene.
type SolarProgram struct {
	*Program

	UProj        int32
	UView        int32
	UModel       int32
	UShadingMode int32
}

func LoadSolarProgram() (*SolarProgram, error) {
	p, err := LoadProgram(solarVertexShader, solarFragmentShader)
	if err != nil {
		return nil, err
	}
	sp := &SolarProgram{Program: p}

	for _, u := range []struct {
		name string
		loc  *int32
	}{
		{"proj_matrix", &sp.UProj},
		{"view_matrix", &sp.UView},
		{"model_matrix", &sp.UModel},
		{"shading_mode", &sp.UShadingMode},
	} {
		*u.loc = gl.GetUniformLocation(p.Id, gl.Str(u.name+"\x00"))
		if *u.loc < 0 {
			p.Release()
			return nil, errors.Errorf("uniform %q not found in program", u.name)
		}
	}
	return sp, nil
}

type Program struct {
	Id                           uint32
	VertexShader, FragmentShader uint32
}

func (p *Program) Release() {
	gl.DetachShader(p.Id, p.VertexShader)
	gl.DetachShader(p.Id, p.FragmentShader)
	gl.DeleteProgram(p.Id)
	gl.DeleteShader(p.VertexShader)
	gl.DeleteShader(p.FragmentShader)
}

func LoadProgram(vertexSource, fragmentSource string) (*Program, error) {
	vs, err := LoadShader(gl.VERTEX_SHADER, vertexSource)
	if err != nil {
		return nil, errors.Wrap(err, "vertex shader")
	}
	fs, err := LoadShader(gl.FRAGMENT_SHADER, fragmentSource)
	if err != nil {
		gl.DeleteShader(vs)
		return nil, errors.Wrap(err, "fragment shader")
	}

	p := &Program{Id: gl.CreateProgram(), VertexShader: vs, FragmentShader: fs}
	gl.AttachShader(p.Id, vs)
	gl.AttachShader(p.Id, fs)
	gl.LinkProgram(p.Id)

	if msg, ok := status(p.Id, gl.LINK_STATUS, gl.GetProgramiv, gl.GetProgramInfoLog); !ok {
		log.Errorf("Failed to link program:\n%s", msg)
		p.Release()
		return nil, errors.Errorf("failed to link program: %q", msg)
	}
	return p, nil
}

func LoadShader(xtype uint32, source string) (uint32, error) {
	shader := gl.CreateShader(xtype)
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	if msg, ok := status(shader, gl.COMPILE_STATUS, gl.GetShaderiv, gl.GetShaderInfoLog); !ok {
		log.Errorf("Failed to compile shader:\n%s", msg)
		gl.DeleteShader(shader)
		return gl.INVALID_INDEX, errors.Errorf("failed to compile shader: %q", msg)
	}
	return shader, nil
}

// status checks a compile or link flag of a shader or program object and
// returns its info log when the flag is not set.
func status(id, pname uint32,
	getiv func(uint32, uint32, *int32),
	getLog func(uint32, int32, *int32, *uint8)) (string, bool) {
	var ok int32
	getiv(id, pname, &ok)
	if ok != gl.FALSE {
		return "", true
	}

	var size int32
	getiv(id, gl.INFO_LOG_LENGTH, &size)
	buf := make([]uint8, size+1)
	getLog(id, int32(len(buf)), &size, &buf[0])
	return string(buf[:size]), false
}
