package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/goliatone/go-payflow/pkg/bootstrap"
	"github.com/goliatone/go-payflow/pkg/flow"
	"github.com/goliatone/go-payflow/pkg/tui"
)

func main() {
	container := flag.String("container", "container.html", "HTML file holding the wizard container element")
	stepName := flag.String("step", "", "step to render (active step if empty)")
	renderer := flag.String("renderer", "html", "renderer to use")
	templates := flag.String("templates", "", "directory holding template fragments")
	schemas := flag.String("schemas", "", "directory holding flow schema documents")
	output := flag.String("output", "", "output file (stdout if empty)")
	walk := flag.Bool("walk", false, "walk the flow interactively instead of rendering once")
	flag.Parse()

	ctx := context.Background()

	file, err := os.Open(*container)
	if err != nil {
		log.Fatalf("Failed to open container: %v", err)
	}
	defer file.Close()

	var options []flow.Option
	if *templates != "" {
		options = append(options, flow.WithTemplateFS(os.DirFS(*templates)))
	}
	if *schemas != "" {
		options = append(options, flow.WithSchemaFS(os.DirFS(*schemas)))
	}

	cfg, err := bootstrap.FromReader(file)
	if err != nil {
		log.Fatalf("Failed to read container configuration: %v", err)
	}

	wizard, err := flow.New(cfg, options...)
	if err != nil {
		log.Fatalf("Failed to build flow: %v", err)
	}

	if *walk {
		walker, err := tui.NewWalker(wizard)
		if err != nil {
			log.Fatalf("Failed to build walker: %v", err)
		}
		if err := walker.Walk(ctx); err != nil {
			log.Fatalf("Walk failed: %v", err)
		}
		return
	}

	target := *stepName
	if target == "" {
		target = wizard.CurrentStep()
	}

	rendered, err := wizard.RenderStep(ctx, target, *renderer)
	if err != nil {
		log.Fatalf("Failed to render step: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, rendered, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Step written to %s\n", *output)
	} else {
		fmt.Println(string(rendered))
	}
}
