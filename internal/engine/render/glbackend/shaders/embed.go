// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// WorldVertexShader is the vertex shader for scene geometry.
//
//go:embed world.vert
var WorldVertexShader string

// WorldFragmentShader is the fragment shader for scene geometry.
//
//go:embed world.frag
var WorldFragmentShader string

// WaterVertexShader is the vertex shader for water tiles.
//
//go:embed water.vert
var WaterVertexShader string

// WaterFragmentShader is the fragment shader for water tiles.
//
//go:embed water.frag
var WaterFragmentShader string

// SkyVertexShader is the vertex shader for the skydome.
//
//go:embed sky.vert
var SkyVertexShader string

// SkyFragmentShader is the fragment shader for the skydome.
//
//go:embed sky.frag
var SkyFragmentShader string

// LineVertexShader is the vertex shader for debug lines.
//
//go:embed line.vert
var LineVertexShader string

// LineFragmentShader is the fragment shader for debug lines.
//
//go:embed line.frag
var LineFragmentShader string
