package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"drawscore/internal/perception"
	"drawscore/internal/registry"
	"drawscore/internal/scoring"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("170"))
	labelStyle = lipgloss.NewStyle().Bold(true).Width(16)
	totalStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
)

// buildPipeline wires the provider client, category registry, interpreter,
// and pipeline from the loaded configuration.
func buildPipeline(cmd *cobra.Command) (*scoring.Pipeline, *registry.Registry, error) {
	client, err := perception.NewVisionClient(cmd.Context(), cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	reg := registry.New(registry.NewFileStore(cfg.Registry.Path), logger)
	interp := scoring.NewInterpreter(reg, logger)
	return scoring.NewPipeline(client, interp, logger), reg, nil
}

// runPlay is the interactive session: collect player info and image paths,
// run one analysis, print the result.
func runPlay(cmd *cobra.Command) error {
	pipeline, _, err := buildPipeline(cmd)
	if err != nil {
		return err
	}

	reader := bufio.NewReader(os.Stdin)

	playerName := promptString(reader, "Enter Player Name: ")
	playerAge := promptAge(reader)
	basePath := promptExistingFile(reader,
		fmt.Sprintf("Enter Base Image Path (e.g. BasePic1.png, looked up under %s): ", cfg.Images.BaseDir),
		cfg.Images.BaseDir)
	drawingPath := promptExistingFile(reader,
		fmt.Sprintf("Enter Drawing Image Path (e.g. DrawingPic1.png, looked up under %s): ", cfg.Images.DrawingDir),
		cfg.Images.DrawingDir)

	score := pipeline.Analyze(cmd.Context(), basePath, drawingPath)
	result := scoring.NewDrawingScore(playerName, playerAge, basePath, drawingPath, score)

	fmt.Println()
	fmt.Println(renderResult(result))
	return nil
}

// promptString reads one non-empty line. Closed stdin ends the session.
func promptString(reader *bufio.Reader, prompt string) string {
	for {
		fmt.Print(prompt)
		line, err := reader.ReadString('\n')
		trimmed := strings.TrimSpace(line)
		if trimmed != "" {
			return trimmed
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, "\ninput closed, exiting")
			os.Exit(1)
		}
	}
}

// promptAge re-prompts until the player enters an integer.
func promptAge(reader *bufio.Reader) int {
	for {
		raw := promptString(reader, "Enter Player Age: ")
		age, err := strconv.Atoi(raw)
		if err == nil {
			return age
		}
		fmt.Printf("Error: %q is not a number. Please try again.\n", raw)
	}
}

// promptExistingFile re-prompts until the named file exists under dir.
func promptExistingFile(reader *bufio.Reader, prompt, dir string) string {
	for {
		name := promptString(reader, prompt)
		full := filepath.Join(dir, name)
		if _, err := os.Stat(full); err == nil {
			return full
		}
		fmt.Printf("Error: File %q does not exist. Please try again.\n", full)
	}
}

// renderResult formats the final summary block.
func renderResult(res scoring.DrawingScore) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Result") + "\n")
	row := func(label, value string) {
		b.WriteString(labelStyle.Render(label) + value + "\n")
	}
	row("Player Name", res.PlayerName)
	row("Player Age", strconv.Itoa(res.PlayerAge))
	row("Name of Drawing", res.DrawingName)
	row("Art Category", res.Category)
	row("Details Found", strconv.Itoa(res.DetailScore))
	b.WriteString(labelStyle.Render("Final Score") + totalStyle.Render(strconv.FormatFloat(res.TotalScore, 'f', -1, 64)))
	return b.String()
}
