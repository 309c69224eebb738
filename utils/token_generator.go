package utils

import (
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
)

// GenerateResetToken returns a 64-char opaque token for password resets.
func GenerateResetToken() string {
	part1 := strings.ReplaceAll(uuid.New().String(), "-", "")
	part2 := strings.ReplaceAll(uuid.New().String(), "-", "")
	return part1 + part2
}

// GenerateLogoName builds a collision-free stored name for an uploaded logo,
// keeping the original extension.
func GenerateLogoName(originalName string) string {
	ext := path.Ext(originalName)
	return fmt.Sprintf("publicacoes/%s%s", uuid.New().String(), ext)
}
