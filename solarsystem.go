package main

import (
	"runtime"

	"github.com/sirupsen/logrus"

	"github.com/mogaika/solarsystem/app"
	"github.com/mogaika/solarsystem/backend"
	"github.com/mogaika/solarsystem/config"
	"github.com/mogaika/solarsystem/r3d"
	"github.com/mogaika/solarsystem/utils"
)

func init() {
	// glfw and OpenGL calls must stay on the main thread
	runtime.LockOSThread()
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	log := logrus.WithField("component", "main")

	cfg, err := config.Default()
	if err != nil {
		log.Fatal(err)
	}
	utils.LogDump(log, "Config", cfg)

	back, err := backend.NewGLFW(cfg.Window)
	if err != nil {
		log.Fatal(err)
	}
	defer back.Destroy()

	a, err := app.New(cfg, r3d.NewGLRenderer(cfg.Render), back)
	if err != nil {
		log.Fatal(err)
	}
	back.Bind(a)

	if err := back.Run(a); err != nil {
		log.Fatalf("Startup failed: %+v", err)
	}
}
