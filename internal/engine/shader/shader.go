// Package shader compiles the tesseract GLSL program and tracks its uniforms.
package shader

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/hyperview/internal/logger"
	"github.com/Faultbox/hyperview/pkg/math"
)

// Uniform names shared by tesseract.vert and tesseract.frag.
const (
	URotation    = "uRotation"
	UTranslation = "uTranslation"
	UScale       = "uScale"
	UViewProj    = "uViewProj"
	UProjectW    = "uProjectW"
	UColor       = "uColor"
	UAmbient     = "uAmbient"
	UDiffuse     = "uDiffuse"
	USpecular    = "uSpecular"
	UShininess   = "uShininess"
	ULightPos    = "uLightPos"
	ULightColor  = "uLightColor"
	UCameraPos   = "uCameraPos"
	UUseTexture  = "uUseTexture"
	UUseLighting = "uUseLighting"
	UTexture     = "uTexture"
)

// UniformNames lists every uniform the program looks up at link time.
var UniformNames = []string{
	URotation, UTranslation, UScale, UViewProj, UProjectW,
	UColor, UAmbient, UDiffuse, USpecular, UShininess,
	ULightPos, ULightColor, UCameraPos,
	UUseTexture, UUseLighting, UTexture,
}

// Program is a linked GL program with its uniform locations resolved.
type Program struct {
	ID       uint32
	uniforms map[string]int32
}

// New compiles and links a program and resolves UniformNames. Uniforms the
// driver optimized away resolve to -1, which GL ignores on upload.
func New(vertexSrc, fragmentSrc string) (*Program, error) {
	id, err := CompileProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return nil, err
	}

	p := &Program{ID: id, uniforms: make(map[string]int32, len(UniformNames))}
	for _, name := range UniformNames {
		loc := GetUniform(id, name)
		if loc < 0 {
			logger.Debug("inactive uniform", zap.String("name", name))
		}
		p.uniforms[name] = loc
	}
	return p, nil
}

// Load builds the tesseract program from dir/tesseract.vert and
// dir/tesseract.frag, or from the embedded sources when dir is empty.
func Load(dir string) (*Program, error) {
	if dir == "" {
		return New(TesseractVertexShader, TesseractFragmentShader)
	}
	return LoadProgram(filepath.Join(dir, "tesseract.vert"), filepath.Join(dir, "tesseract.frag"))
}

// LoadProgram reads shader sources from disk and builds a program.
func LoadProgram(vertPath, fragPath string) (*Program, error) {
	vert, err := os.ReadFile(vertPath)
	if err != nil {
		return nil, fmt.Errorf("read vertex shader: %w", err)
	}
	frag, err := os.ReadFile(fragPath)
	if err != nil {
		return nil, fmt.Errorf("read fragment shader: %w", err)
	}
	logger.Info("loading shaders from disk",
		zap.String("vertex", vertPath),
		zap.String("fragment", fragPath),
	)
	return New(string(vert), string(frag))
}

// Use binds the program.
func (p *Program) Use() {
	gl.UseProgram(p.ID)
}

// Delete releases the GL program.
func (p *Program) Delete() {
	if p.ID != 0 {
		gl.DeleteProgram(p.ID)
		p.ID = 0
	}
}

// Location returns the cached location of a uniform, -1 if unknown.
func (p *Program) Location(name string) int32 {
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	return -1
}

// SetMat4 uploads a column-major matrix.
func (p *Program) SetMat4(name string, m *math.Mat4) {
	gl.UniformMatrix4fv(p.Location(name), 1, false, m.Ptr())
}

// SetMat4Raw uploads a column-major matrix given as a flat array.
func (p *Program) SetMat4Raw(name string, m *[16]float32) {
	gl.UniformMatrix4fv(p.Location(name), 1, false, &m[0])
}

// SetVec4 uploads a 4-vector.
func (p *Program) SetVec4(name string, v math.Vec4) {
	gl.Uniform4f(p.Location(name), v.X, v.Y, v.Z, v.W)
}

// SetVec3 uploads a 3-vector.
func (p *Program) SetVec3(name string, v [3]float32) {
	gl.Uniform3f(p.Location(name), v[0], v[1], v[2])
}

// SetFloat uploads a scalar.
func (p *Program) SetFloat(name string, f float32) {
	gl.Uniform1f(p.Location(name), f)
}

// SetInt uploads an integer or sampler unit.
func (p *Program) SetInt(name string, i int32) {
	gl.Uniform1i(p.Location(name), i)
}

// SetBool uploads a boolean as 0 or 1.
func (p *Program) SetBool(name string, b bool) {
	var i int32
	if b {
		i = 1
	}
	gl.Uniform1i(p.Location(name), i)
}

// CompileProgram compiles vertex and fragment shaders and links them into a program.
// Returns the program ID or an error carrying the GL info log.
func CompileProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vertShader, err := compileShader(vertexSrc, gl.VERTEX_SHADER, "vertex")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vertShader)

	fragShader, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER, "fragment")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fragShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertShader)
	gl.AttachShader(program, fragShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		msg := infoLog(logLen, func(buf *uint8) {
			gl.GetProgramInfoLog(program, logLen, nil, buf)
		})
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link: %s", msg)
	}

	return program, nil
}

func compileShader(source string, shaderType uint32, stage string) (uint32, error) {
	sh := gl.CreateShader(shaderType)
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(sh, 1, csource, nil)
	free()
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLen)
		msg := infoLog(logLen, func(buf *uint8) {
			gl.GetShaderInfoLog(sh, logLen, nil, buf)
		})
		gl.DeleteShader(sh)
		return 0, fmt.Errorf("%s shader: %s", stage, msg)
	}

	return sh, nil
}

func infoLog(n int32, read func(*uint8)) string {
	if n <= 0 {
		return "(no info log)"
	}
	buf := make([]byte, n)
	read(&buf[0])
	return gl.GoStr(&buf[0])
}

// GetUniform returns the uniform location for the given name, -1 if the
// uniform is missing or inactive.
func GetUniform(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}
