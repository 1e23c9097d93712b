package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"drawscore/internal/registry"
	"drawscore/internal/scoring"
)

var (
	scorePlayer  string
	scoreAge     int
	scoreBase    string
	scoreDrawing string
)

// scoreCmd runs one analysis non-interactively from flags.
var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a single drawing from flags, without prompts",
	Example: `  drawscore score --player Ada --age 9 \
    --base Images/Base/BasePic1.png --drawing Images/Drawing/DrawingPic1.png`,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, path := range []string{scoreBase, scoreDrawing} {
			if _, err := os.Stat(path); err != nil {
				return fmt.Errorf("image not found: %s", path)
			}
		}

		pipeline, _, err := buildPipeline(cmd)
		if err != nil {
			return err
		}

		score := pipeline.Analyze(cmd.Context(), scoreBase, scoreDrawing)
		result := scoring.NewDrawingScore(scorePlayer, scoreAge, scoreBase, scoreDrawing, score)

		fmt.Println(renderResult(result))
		return nil
	},
}

// categoriesCmd lists the art categories seen so far.
var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the art categories encountered so far",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg := registry.New(registry.NewFileStore(cfg.Registry.Path), logger)

		cats := reg.Categories()
		if len(cats) == 0 {
			fmt.Println("No categories recorded yet.")
			return nil
		}
		for _, cat := range cats {
			fmt.Println(cat)
		}
		return nil
	},
}

// policyCmd prints the scoring rubric sent to the AI judge.
var policyCmd = &cobra.Command{
	Use:   "policy",
	Short: "Print the scoring rubric sent to the AI judge",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Print(scoring.ScoringPolicy())
	},
}

func init() {
	scoreCmd.Flags().StringVar(&scorePlayer, "player", "", "player name")
	scoreCmd.Flags().IntVar(&scoreAge, "age", 0, "player age")
	scoreCmd.Flags().StringVar(&scoreBase, "base", "", "path to the base template image")
	scoreCmd.Flags().StringVar(&scoreDrawing, "drawing", "", "path to the drawing image")
	_ = scoreCmd.MarkFlagRequired("player")
	_ = scoreCmd.MarkFlagRequired("base")
	_ = scoreCmd.MarkFlagRequired("drawing")
}
