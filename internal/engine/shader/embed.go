package shader

import _ "embed"

// TesseractVertexShader lifts 4D vertices into world space and reduces them to 3D.
//
//go:embed tesseract.vert
var TesseractVertexShader string

// TesseractFragmentShader shades with Blinn-Phong and an optional texture.
//
//go:embed tesseract.frag
var TesseractFragmentShader string
