package scoring

import (
	"time"

	"github.com/google/uuid"
)

// DrawingScore is the record handed to the presentation layer after one play
// session. Assembled once, never mutated.
type DrawingScore struct {
	SessionID     string
	PlayerName    string
	PlayerAge     int
	DrawingName   string
	Category      string
	DetailScore   int
	TotalScore    float64
	BaseImagePath string
	DrawingPath   string
	ScoredAt      time.Time
}

// NewDrawingScore assembles the boundary record from player identity, the
// input paths, and a pipeline score. Pure field mapping.
func NewDrawingScore(playerName string, playerAge int, basePath, drawingPath string, score Score) DrawingScore {
	return DrawingScore{
		SessionID:     uuid.NewString(),
		PlayerName:    playerName,
		PlayerAge:     playerAge,
		DrawingName:   score.DrawingName,
		Category:      score.Category,
		DetailScore:   score.DetailScore,
		TotalScore:    score.Total,
		BaseImagePath: basePath,
		DrawingPath:   drawingPath,
		ScoredAt:      time.Now(),
	}
}
