package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/goliatone/go-mailgen/pkg/content"
	"github.com/goliatone/go-mailgen/pkg/orchestrator"
	"github.com/goliatone/go-mailgen/pkg/render"
)

func main() {
	data := flag.String("data", "templates/email-data.json", "base data file")
	profilesDir := flag.String("profiles", "templates", "directory holding user profile files")
	pattern := flag.String("pattern", "user_*.json", "glob pattern for profile files")
	outputDir := flag.String("output-dir", ".", "directory for rendered output")
	rendererName := flag.String("renderer", "email", "renderer to use (email, text)")
	templateName := flag.String("template", "", "template name (renderer default if empty)")
	flag.Parse()

	ctx := context.Background()

	profiles, err := filepath.Glob(filepath.Join(*profilesDir, *pattern))
	if err != nil {
		log.Fatalf("Failed to list profiles: %v", err)
	}
	if len(profiles) == 0 {
		log.Fatalf("No profile files matching %s in %s. Run mailgen-cli --create-samples first.", *pattern, *profilesDir)
	}

	if err := os.MkdirAll(*outputDir, 0o755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	fmt.Printf("Rendering %d personalized outputs...\n", len(profiles))

	rendered, failed := renderBatch(ctx, orchestrator.New(), batchJob{
		dataPath:  *data,
		profiles:  profiles,
		outputDir: *outputDir,
		renderer:  *rendererName,
		template:  *templateName,
	})

	fmt.Printf("Done: %d rendered, %d failed.\n", rendered, failed)
	if failed > 0 {
		os.Exit(1)
	}
}

// renderClient is the slice of the orchestrator the batch loop needs, kept
// narrow so tests can substitute a scripted implementation.
type renderClient interface {
	Render(ctx context.Context, req orchestrator.Request) ([]byte, error)
}

type batchJob struct {
	dataPath  string
	profiles  []string
	outputDir string
	renderer  string
	template  string
}

// renderBatch renders one output per profile file. Per-user failures (render
// or write) are logged and counted but never stop the batch.
func renderBatch(ctx context.Context, client renderClient, job batchJob) (rendered, failed int) {
	for _, profile := range job.profiles {
		outputPath := filepath.Join(job.outputDir, outputName(profile, job.renderer))

		result, err := client.Render(ctx, orchestrator.Request{
			Source:        content.SourceFromFile(job.dataPath),
			ProfileSource: content.SourceFromFile(profile),
			Renderer:      job.renderer,
			RenderOptions: render.RenderOptions{Template: job.template},
		})
		if err != nil {
			log.Printf("Failed to render %s: %v", profile, err)
			failed++
			continue
		}

		if err := os.WriteFile(outputPath, result, 0o644); err != nil {
			log.Printf("Failed to write %s: %v", outputPath, err)
			failed++
			continue
		}

		fmt.Printf("Rendered %s -> %s\n", profile, outputPath)
		rendered++
	}
	return rendered, failed
}

func outputName(profilePath, rendererName string) string {
	stem := strings.TrimSuffix(filepath.Base(profilePath), filepath.Ext(profilePath))
	stem = strings.TrimSuffix(stem, "_data")

	ext := ".html"
	if rendererName == "text" {
		ext = ".txt"
	}
	return "batch_rendered_" + stem + ext
}
