package manifest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/annotwalk/directive"
	"github.com/vk/annotwalk/internal/ctxlog"
)

// Load reads directive manifests from the given paths (files or directories
// scanned recursively for .hcl files) and returns a populated registry.
func Load(ctx context.Context, paths ...string) (*directive.Registry, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Manifest loading started.", "path_count", len(paths))

	files, err := findAllHCLFiles(paths)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered manifest files.", "count", len(files))

	registry := directive.NewRegistry()
	parser := hclparse.NewParser()

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse manifest file %s: %w", file, diags)
		}
		if err := decodeInto(ctx, registry, hclFile.Body, file); err != nil {
			return nil, err
		}
	}

	logger.Debug("Manifest loading complete.", "directives", registry.Len())
	return registry, nil
}

// Parse decodes directive manifests from in-memory HCL source. The filename
// is used for diagnostics only.
func Parse(ctx context.Context, src []byte, filename string) (*directive.Registry, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse manifest source %s: %w", filename, diags)
	}

	registry := directive.NewRegistry()
	if err := decodeInto(ctx, registry, hclFile.Body, filename); err != nil {
		return nil, err
	}
	return registry, nil
}

func decodeInto(ctx context.Context, registry *directive.Registry, body hcl.Body, filename string) error {
	var root fileRoot
	diags := gohcl.DecodeBody(body, nil, &root)
	if diags.HasErrors() {
		return fmt.Errorf("failed to decode manifest file %s: %w", filename, diags)
	}

	for _, block := range root.Directives {
		def, err := translateDirective(ctx, block)
		if err != nil {
			return err
		}
		if _, exists := registry.Definition(def.Name); exists {
			return fmt.Errorf("directive '%s' declared more than once (last in %s)", def.Name, filename)
		}
		registry.Register(def)
	}
	return nil
}

// findAllHCLFiles walks all given paths and returns a flat list of all .hcl
// files found, deduplicated and in discovery order.
func findAllHCLFiles(paths []string) ([]string, error) {
	var allFiles []string
	seen := make(map[string]struct{})

	add := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		allFiles = append(allFiles, path)
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("manifest path not found: %s", path)
			}
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}

		if !info.IsDir() {
			if filepath.Ext(path) != ".hcl" {
				return nil, fmt.Errorf("specified file is not an .hcl file: %s", path)
			}
			add(path)
			continue
		}

		err = filepath.Walk(path, func(p string, fi os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if !fi.IsDir() && filepath.Ext(p) == ".hcl" {
				add(p)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return allFiles, nil
}
