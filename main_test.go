package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

func TestBuildScene(t *testing.T) {
	tests := []struct {
		name        string
		opts        renderOptions
		expectError bool
	}{
		{"default scene", renderOptions{sceneName: "default", width: 80, height: 60}, false},
		{"refraction scene", renderOptions{sceneName: "refraction", width: 80, height: 60}, false},
		{"csg scene", renderOptions{sceneName: "csg", width: 80, height: 60}, false},
		{"soft-shadow scene", renderOptions{sceneName: "soft-shadow", width: 80, height: 60}, false},
		{"unknown scene", renderOptions{sceneName: "nonexistent", width: 80, height: 60}, true},
		{"empty scene name", renderOptions{width: 80, height: 60}, true},
		{"model with unsupported extension", renderOptions{modelPath: "model.stl", width: 80, height: 60}, true},
		{"missing model file", renderOptions{modelPath: "does-not-exist.obj", width: 80, height: 60}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := buildScene(tt.opts)

			if tt.expectError {
				if err == nil {
					t.Fatalf("Expected an error for %+v, got none", tt.opts)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if s.World == nil || s.Camera == nil {
				t.Fatalf("Scene should have a world and a camera, got %+v", s)
			}
		})
	}
}

func TestApplyCameraOptions(t *testing.T) {
	camera := renderer.NewCamera(80, 60, 1.2)
	applyCameraOptions(camera, renderOptions{
		maxDepth:         7,
		threads:          2,
		oversampling:     3,
		aperture:         0.1,
		blurOversampling: 8,
	})

	if camera.MaxDepth != 7 || camera.Threads != 2 || camera.Oversampling != 3 {
		t.Errorf("Camera options not applied: %+v", camera)
	}
	if camera.FocalLength != 1 {
		t.Errorf("Zero focal length should keep the scene default, got %f", camera.FocalLength)
	}

	applyCameraOptions(camera, renderOptions{focalLength: 4.5})
	if camera.FocalLength != 4.5 {
		t.Errorf("Expected focal length 4.5, got %f", camera.FocalLength)
	}
}

func TestSaveCanvas_PPM(t *testing.T) {
	canvas := renderer.NewCanvas(4, 3)
	path := filepath.Join(t.TempDir(), "out.ppm")

	if err := saveCanvas(canvas, path); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Reading the output: %v", err)
	}
	if !strings.HasPrefix(string(data), "P3\n4 3\n255\n") {
		t.Errorf("Expected a PPM header, got %q", string(data)[:20])
	}
}

func TestScenesCommand_ListsBuiltins(t *testing.T) {
	var out strings.Builder
	cmd := scenesCommand()
	cmd.SetOut(&out)
	cmd.Run(cmd, nil)

	for _, name := range scene.Names() {
		if !strings.Contains(out.String(), name) {
			t.Errorf("Expected output to list %q, got %q", name, out.String())
		}
	}
}
