package questions

import (
	"context"

	"interview-backend/internal/shared/telemetry"
)

var defaultQuestions = []Question{
	{
		Skill:            "python",
		Text:             "Explain list comprehensions and give an example.",
		ExpectedKeywords: "list comprehension,for,in",
	},
	{
		Skill:            "python",
		Text:             "What are decorators and when do you use them?",
		ExpectedKeywords: "decorator,function,wrap",
	},
	{
		Skill:            "ml",
		Text:             "What is overfitting and how to prevent it?",
		ExpectedKeywords: "overfitting,regularization,validation",
	},
	{
		Skill:            "sql",
		Text:             "Explain INNER JOIN vs LEFT JOIN.",
		ExpectedKeywords: "inner join,left join,rows",
	},
}

// Seed populates the question bank once, at startup, if it is empty.
func Seed(ctx context.Context, repo Repo) error {
	n, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	for _, q := range defaultQuestions {
		if _, err := repo.Create(ctx, q); err != nil {
			return err
		}
	}
	telemetry.Info("questions.seeded", map[string]any{"count": len(defaultQuestions)})
	return nil
}
