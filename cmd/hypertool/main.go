// hypertool inspects the tesseract mesh and the 4D transforms from the
// command line. All output is YAML.
package main

import (
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/hyperview/pkg/hypercube"
	"github.com/Faultbox/hyperview/pkg/math"
	"github.com/Faultbox/hyperview/pkg/transform4d"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "mesh":
		err = cmdMesh(args)
	case "rotate", "rot":
		err = cmdRotate(args)
	case "transform", "tf":
		err = cmdTransform(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`hypertool - tesseract mesh and 4D transform inspector

Usage:
  hypertool <command> [options]

Commands:
  mesh       Build the mesh and print sub-mesh statistics
  rotate     Compose a rotation from per-plane angles
  transform  Decompose the affine transform of one instance

Examples:
  hypertool mesh -size 2 -variants solid,wireframe
  hypertool mesh -dump wireframe
  hypertool rotate -angles xw=0.785,zw=0.3
  hypertool transform -angles xy=1 -center 0,0,0,2 -scale 1.5 -instance after -corners`)
}

func cmdMesh(args []string) error {
	fs := flag.NewFlagSet("mesh", flag.ExitOnError)
	size := fs.Float64("size", 1, "Edge length")
	variantList := fs.String("variants", "", "Comma separated variants (default: all tesseract variants)")
	dump := fs.String("dump", "", "Print vertices and indices of one variant")
	fs.Parse(args)

	variants, err := parseVariants(*variantList)
	if err != nil {
		return err
	}
	r, err := buildMeshReport(float32(*size), variants, *dump)
	if err != nil {
		return err
	}
	return printYAML(r)
}

func cmdRotate(args []string) error {
	fs := flag.NewFlagSet("rotate", flag.ExitOnError)
	angleList := fs.String("angles", "", "Per-plane angles in radians, e.g. xy=0.5,xw=1")
	fs.Parse(args)

	angles, err := parseAngles(*angleList)
	if err != nil {
		return err
	}
	return printYAML(buildRotateReport(angles))
}

func cmdTransform(args []string) error {
	fs := flag.NewFlagSet("transform", flag.ExitOnError)
	angleList := fs.String("angles", "", "Per-plane angles in radians, e.g. xy=0.5,xw=1")
	centerStr := fs.String("center", "0,0,0,1", "Center x,y,z,w")
	scale := fs.Float64("scale", 1, "Uniform xyz scale")
	instName := fs.String("instance", "current", "Instance: before, current or after")
	pointStr := fs.String("point", "", "Transform one point x,y,z,w")
	corners := fs.Bool("corners", false, "Transform all 16 corners of the unit tesseract")
	fs.Parse(args)

	angles, err := parseAngles(*angleList)
	if err != nil {
		return err
	}
	center, err := parseVec4(*centerStr)
	if err != nil {
		return err
	}
	inst, err := transform4d.ParseInstance(*instName)
	if err != nil {
		return err
	}

	var points []math.Vec4
	if *pointStr != "" {
		p, err := parseVec4(*pointStr)
		if err != nil {
			return err
		}
		points = append(points, p)
	}
	if *corners {
		for i := 0; i < hypercube.CornerCount; i++ {
			points = append(points, hypercube.Corner(i, 1))
		}
	}

	return printYAML(buildTransformReport(angles, center, float32(*scale), inst, points))
}

func printYAML(v any) error {
	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	return enc.Close()
}
