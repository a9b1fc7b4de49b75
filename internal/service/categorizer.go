package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/SahniNitish/HCI-Project/internal/models"

	"go.uber.org/zap"
)

// Categorizer maps a free-text expense description to one of the fixed
// category labels using the text-generation backend. It never fails past
// its boundary: any backend error or unparseable answer resolves to
// models.CategoryOther.
type Categorizer struct {
	generator TextGenerator
	logger    *zap.Logger
}

func NewCategorizer(generator TextGenerator, logger *zap.Logger) *Categorizer {
	return &Categorizer{
		generator: generator,
		logger:    logger,
	}
}

func (c *Categorizer) Classify(ctx context.Context, description string, amount float64) string {
	prompt := fmt.Sprintf(`You are an expense categorization assistant. Categorize expenses into one of these categories ONLY: Food, Transportation, Shopping, Entertainment, Bills, Healthcare, Education, Other. Return only the category name, nothing else.

Categorize this expense: '%s' (Amount: $%v)`, description, amount)

	response, err := c.generator.Generate(ctx, prompt)
	if err != nil {
		c.logger.Error("AI categorization failed", zap.Error(err))
		return string(models.CategoryOther)
	}

	category := strings.TrimSpace(response)
	if models.IsValidCategory(category) {
		return category
	}

	c.logger.Warn("AI returned an unknown category, falling back",
		zap.String("response", category),
	)
	return string(models.CategoryOther)
}
