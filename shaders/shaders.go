// Package shaders holds the point-sprite shader pair as plain configuration
// data. The source text is handed verbatim to the host rendering pipeline.
package shaders

import (
	"fmt"
	"strings"

	"github.com/chewxy/math32"
)

// PointSize fixed gl_PointSize written by the vertex stage.
const PointSize = 10.0

// Binding names one attribute or uniform the pair expects from the host.
type Binding struct {
	Name string
	Type string
}

// Asset is a named vertex/fragment pair plus the inputs it reads.
type Asset struct {
	Name           string
	VertexShader   string
	FragmentShader string
	Attributes     []Binding
	Uniforms       []Binding
}

// Contract shared by both dialects. color is declared by the fragment stage
// but never read.
var (
	contractAttributes = []Binding{{Name: "alpha", Type: "float"}}
	contractUniforms   = []Binding{{Name: "color", Type: "vec3"}, {Name: "u_time", Type: "float"}}
)

// PointSprite is the pair in three.js ShaderMaterial form: position,
// modelViewMatrix and projectionMatrix are injected by the material.
var PointSprite = Asset{
	Name: "pointSprite",
	VertexShader: `
    attribute float alpha;
        varying float vAlpha;

        void main() {
        vAlpha = alpha;
        vec4 mvPosition = modelViewMatrix * vec4( position, 1.0 );
        gl_PointSize = 10.0;
        gl_Position = projectionMatrix * mvPosition;
        }
    `,
	FragmentShader: `
    uniform vec3 color;
        uniform float u_time;

        void main() {
        gl_FragColor = vec4(sin(u_time),0.1,0.1,1.0);
        }
    `,
	Attributes: contractAttributes,
	Uniforms:   contractUniforms,
}

// PointSpriteCore is the same pair for a GLSL 4.10 core context with no
// material layer: attribute locations are fixed and the matrices are
// regular uniforms.
var PointSpriteCore = Asset{
	Name: "pointSpriteCore",
	VertexShader: `#version 410 core
layout (location = 0) in vec3 position;
layout (location = 1) in float alpha;
uniform mat4 modelView;
uniform mat4 projection;
out float vAlpha;

void main() {
	vAlpha = alpha;
	vec4 mvPosition = modelView * vec4(position, 1.0);
	gl_PointSize = 10.0;
	gl_Position = projection * mvPosition;
}
` + "\x00",
	FragmentShader: `#version 410 core
uniform vec3 color;
uniform float u_time;
in float vAlpha;
out vec4 fragColor;

void main() {
	fragColor = vec4(sin(u_time), 0.1, 0.1, 1.0);
}
` + "\x00",
	Attributes: append([]Binding{{Name: "position", Type: "vec3"}}, contractAttributes...),
	Uniforms:   append([]Binding{{Name: "modelView", Type: "mat4"}, {Name: "projection", Type: "mat4"}}, contractUniforms...),
}

func (a Asset) Attribute(name string) (Binding, bool) {
	return find(a.Attributes, name)
}

func (a Asset) Uniform(name string) (Binding, bool) {
	return find(a.Uniforms, name)
}

func find(bindings []Binding, name string) (Binding, bool) {
	for _, b := range bindings {
		if b.Name == name {
			return b, true
		}
	}
	return Binding{}, false
}

// Validate checks that every listed binding is declared in one of the stages.
func (a Asset) Validate() error {
	src := a.VertexShader + "\n" + a.FragmentShader
	if strings.TrimSpace(a.VertexShader) == "" || strings.TrimSpace(a.FragmentShader) == "" {
		return fmt.Errorf("shader %q: empty stage", a.Name)
	}
	for _, b := range a.Uniforms {
		if !declares(src, "uniform", b) {
			return fmt.Errorf("shader %q: uniform %s %s not declared", a.Name, b.Type, b.Name)
		}
	}
	for _, b := range a.Attributes {
		if !declaresInput(src, b) {
			return fmt.Errorf("shader %q: attribute %s %s not declared", a.Name, b.Type, b.Name)
		}
	}
	return nil
}

// legacy "attribute" or core "in" qualifier
func declaresInput(src string, b Binding) bool {
	return declares(src, "attribute", b) || declares(src, "in", b)
}

//the terminating ';' keeps alpha from matching alphaMask
func declares(src string, qualifier string, b Binding) bool {
	return strings.Contains(src, qualifier+" "+b.Type+" "+b.Name+";")
}

// FragmentColor is the fragment stage's output for a given u_time.
func FragmentColor(uTime float32) [4]float32 {
	return [4]float32{math32.Sin(uTime), 0.1, 0.1, 1.0}
}
