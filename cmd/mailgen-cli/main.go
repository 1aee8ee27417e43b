package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goliatone/go-mailgen/pkg/content"
	"github.com/goliatone/go-mailgen/pkg/orchestrator"
	"github.com/goliatone/go-mailgen/pkg/prompt"
	"github.com/goliatone/go-mailgen/pkg/render"
)

var emailTemplates = []string{
	"templates/newsletter.tpl",
	"templates/digest.tpl",
}

func main() {
	templateName := flag.String("template", "", "template name (renderer default if empty)")
	data := flag.String("data", "templates/email-data.json", "base data file path or URL")
	userData := flag.String("user-data", "", "user personalization data file path or URL")
	output := flag.String("output", "", "output file (stdout if empty)")
	rendererName := flag.String("renderer", "email", "renderer to use (email, text)")
	themeName := flag.String("theme", "", "theme name (requires a theme manifest)")
	themeVariant := flag.String("variant", "", "theme variant")
	sanitize := flag.Bool("sanitize", false, "sanitize rendered markup before writing")
	preview := flag.Bool("preview", false, "open the rendered output in the default browser")
	interactive := flag.Bool("interactive", false, "prompt for template and output choices")
	createSamples := flag.Bool("create-samples", false, "write sample user profile files and exit")
	samplesDir := flag.String("samples-dir", "templates", "directory for --create-samples output")
	flag.Parse()

	ctx := context.Background()

	if *createSamples {
		if err := writeSampleProfiles(*samplesDir); err != nil {
			log.Fatalf("Failed to create samples: %v", err)
		}
		return
	}

	if *interactive {
		if err := runPrompts(ctx, templateName, output); err != nil {
			if errors.Is(err, prompt.ErrAborted) {
				fmt.Println("Aborted.")
				return
			}
			log.Fatalf("Prompt failed: %v", err)
		}
	}

	src := parseSource(*data)
	if src == nil {
		log.Fatalf("invalid data source: %q", *data)
	}

	gen := orchestrator.New(
		orchestrator.WithLoaderOptions(loaderOptions(*data, *userData)),
	)

	req := orchestrator.Request{
		Source:        src,
		ProfileSource: parseSource(*userData),
		Renderer:      *rendererName,
		ThemeName:     *themeName,
		ThemeVariant:  *themeVariant,
		RenderOptions: render.RenderOptions{
			Template: *templateName,
			Sanitize: *sanitize,
		},
	}

	rendered, err := gen.Render(ctx, req)
	if err != nil {
		log.Fatalf("Failed to render: %v", err)
	}

	if *output == "" {
		fmt.Println(string(rendered))
		return
	}

	if err := os.WriteFile(*output, rendered, 0o644); err != nil {
		log.Fatalf("Failed to write output: %v", err)
	}
	fmt.Printf("Output written to %s\n", *output)

	if *preview {
		if err := openBrowser(*output); err != nil {
			log.Printf("Failed to open preview: %v", err)
		}
	}
}

func runPrompts(ctx context.Context, templateName, output *string) error {
	driver := prompt.NewSurveyDriver()

	if *templateName == "" {
		idx, err := driver.Select(ctx, prompt.SelectConfig{
			Message: "Template",
			Options: emailTemplates,
		})
		if err != nil {
			return err
		}
		if idx >= 0 {
			*templateName = emailTemplates[idx]
		}
	}

	if *output == "" {
		path, err := driver.Input(ctx, prompt.InputConfig{
			Message: "Output file (empty for stdout)",
		})
		if err != nil {
			return err
		}
		*output = strings.TrimSpace(path)
	}

	if *output != "" {
		if _, err := os.Stat(*output); err == nil {
			ok, err := driver.Confirm(ctx, prompt.ConfirmConfig{
				Message: fmt.Sprintf("%s exists, overwrite?", *output),
				Default: true,
			})
			if err != nil {
				return err
			}
			if !ok {
				return prompt.ErrAborted
			}
		}
	}

	return nil
}

func parseSource(raw string) content.Source {
	path := strings.TrimSpace(raw)
	if path == "" {
		return nil
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return content.SourceFromURL(path)
	}
	return content.SourceFromFile(path)
}

func loaderOptions(locations ...string) content.LoaderOptions {
	options := content.NewLoaderOptions()
	for _, location := range locations {
		if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
			options.AllowHTTPFallback = true
		}
	}
	return options
}

func openBrowser(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	url := "file://" + abs

	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	default:
		return exec.Command("xdg-open", url).Start()
	}
}

func writeSampleProfiles(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	samples := []map[string]any{
		{
			"name":      "Alex Chen",
			"email":     "alex.chen@example.com",
			"interests": []string{"automation", "productivity", "open source"},
			"plan":      "pro",
		},
		{
			"name":      "Sarah Johnson",
			"email":     "sarah.j@company.com",
			"interests": []string{"team management", "scaling", "performance"},
			"plan":      "enterprise",
		},
	}

	for i, sample := range samples {
		payload, err := json.MarshalIndent(sample, "", "  ")
		if err != nil {
			return err
		}
		path := filepath.Join(dir, fmt.Sprintf("user_%d_data.json", i+1))
		if err := os.WriteFile(path, payload, 0o644); err != nil {
			return err
		}
		fmt.Printf("Created sample user data: %s\n", path)
	}
	return nil
}
