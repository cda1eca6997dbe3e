package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const (
	// DefaultScoreLogFile is resolved under the XDG data home when no path is configured.
	DefaultScoreLogFile = "tictactoe/scores_log.txt"

	scoreLogTimeLayout = "2006-01-02 03:04 PM"
	scoreLogSeparator  = "----------------------------"
)

// ScoreLog appends tally exports to a plain text file.
type ScoreLog struct {
	path string
	now  func() time.Time
}

func NewScoreLog(path string) *ScoreLog {
	if path == "" {
		path = filepath.Join(xdg.DataHome, DefaultScoreLogFile)
	}

	return &ScoreLog{
		path: path,
		now:  time.Now,
	}
}

func (that *ScoreLog) Path() string {
	return that.path
}

// Append writes one block for tally and returns the file path.
func (that *ScoreLog) Append(ctx context.Context, tally entity.Tally) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(that.path), 0o755); err != nil {
		return "", fmt.Errorf("failed to create score log dir: %w", err)
	}

	file, err := os.OpenFile(that.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return "", fmt.Errorf("failed to open score log: %w", err)
	}
	defer file.Close()

	if _, err = file.WriteString(formatScoreBlock(tally, that.now())); err != nil {
		return "", fmt.Errorf("failed to write score log: %w", err)
	}

	return that.path, nil
}

func formatScoreBlock(tally entity.Tally, at time.Time) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "X Wins: %d\n", tally.XWins)
	fmt.Fprintf(&sb, "O Wins: %d\n", tally.OWins)
	fmt.Fprintf(&sb, "Draws: %d\n", tally.Draws)
	fmt.Fprintf(&sb, "Timestamp: %s\n", at.Format(scoreLogTimeLayout))
	sb.WriteString(scoreLogSeparator + "\n")

	return sb.String()
}
