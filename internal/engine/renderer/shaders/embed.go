// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// SceneVertexShader transforms vertices and normals into eye space.
//
//go:embed scene.vert
var SceneVertexShader string

// SceneFragmentShader lights each fragment with the five scene lights.
//
//go:embed scene.frag
var SceneFragmentShader string
