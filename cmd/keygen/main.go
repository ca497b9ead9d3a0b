// Copyright 2025 The assoc Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// keygen generates the enumeration capability an integer-backed enum
// type needs to address an assoc.Assoc: a MaxVariants method returning
// one plus the type's greatest constant.
//
// Usage:
//
//	keygen -type Letter [-output letter_assoc.go] [package]
//
// It is intended for use with go:generate, next to the const block that
// defines the enum:
//
//	//go:generate go run github.com/bpowers/assoc/cmd/keygen -type Letter
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/constant"
	"go/format"
	"go/types"
	"log"
	"os"
	"strings"

	"golang.org/x/tools/go/packages"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("keygen: ")

	typeName := flag.String("type", "", "enum type name; required")
	output := flag.String("output", "", "output file name; default <type>_assoc.go")
	flag.Parse()
	if *typeName == "" {
		flag.Usage()
		os.Exit(2)
	}

	patterns := flag.Args()
	if len(patterns) == 0 {
		patterns = []string{"."}
	}

	pkg, err := loadPackage(patterns)
	if err != nil {
		log.Fatal(err)
	}

	maxVariants, err := maxVariantsFor(pkg, *typeName)
	if err != nil {
		log.Fatal(err)
	}

	src, err := generate(pkg.Name, *typeName, maxVariants)
	if err != nil {
		log.Fatal(err)
	}

	outputName := *output
	if outputName == "" {
		outputName = fmt.Sprintf("%s_assoc.go", strings.ToLower(*typeName))
	}
	if err := os.WriteFile(outputName, src, 0644); err != nil {
		log.Fatal(err)
	}
}

func loadPackage(patterns []string) (*packages.Package, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedTypes | packages.NeedTypesInfo | packages.NeedSyntax,
	}
	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("packages.Load: %w", err)
	}
	if len(pkgs) != 1 {
		return nil, fmt.Errorf("expected a single package, found %d", len(pkgs))
	}
	if len(pkgs[0].Errors) > 0 {
		return nil, fmt.Errorf("package %s: %v", pkgs[0].Name, pkgs[0].Errors[0])
	}
	return pkgs[0], nil
}

// maxVariantsFor returns one plus the greatest discriminant among the
// package-level constants of the named type.
func maxVariantsFor(pkg *packages.Package, typeName string) (uint64, error) {
	scope := pkg.Types.Scope()
	obj := scope.Lookup(typeName)
	if obj == nil {
		return 0, fmt.Errorf("no type %s in package %s", typeName, pkg.Name)
	}
	tn, ok := obj.(*types.TypeName)
	if !ok {
		return 0, fmt.Errorf("%s is not a type", typeName)
	}
	basic, ok := tn.Type().Underlying().(*types.Basic)
	if !ok || basic.Info()&types.IsInteger == 0 {
		return 0, fmt.Errorf("%s is not backed by a primitive integer", typeName)
	}

	var (
		maxDiscriminant uint64
		found           bool
	)
	for _, name := range scope.Names() {
		c, ok := scope.Lookup(name).(*types.Const)
		if !ok || c.Type() != tn.Type() {
			continue
		}
		d, ok := constant.Uint64Val(c.Val())
		if !ok {
			return 0, fmt.Errorf("constant %s has a negative or non-integer discriminant", name)
		}
		if !found || d > maxDiscriminant {
			maxDiscriminant = d
		}
		found = true
	}
	if !found {
		return 0, fmt.Errorf("no constants of type %s in package %s", typeName, pkg.Name)
	}
	return maxDiscriminant + 1, nil
}

func generate(pkgName, typeName string, maxVariants uint64) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by \"keygen -type %s\"; DO NOT EDIT.\n\n", typeName)
	fmt.Fprintf(&buf, "package %s\n\n", pkgName)
	fmt.Fprintf(&buf, "// MaxVariants returns one plus the greatest discriminant defined for\n")
	fmt.Fprintf(&buf, "// %s, fixing the storage size of any assoc.Assoc keyed by it.\n", typeName)
	fmt.Fprintf(&buf, "func (%s) MaxVariants() int { return %d }\n", typeName, maxVariants)
	return format.Source(buf.Bytes())
}
