package answers

import (
	"context"
	"io"

	"interview-backend/internal/extract"
	"interview-backend/internal/shared/storage/object"
	"interview-backend/internal/shared/telemetry"
)

// Service contains business logic for answer submission.
type Service struct {
	Store object.ObjectStore
	Repo  Repo
}

// Create stores the optional uploaded file and records the answer. When the
// submission has a file but no text, the file's text is extracted and stored
// as the answer text so scoring can see it; extraction failures are tolerated.
func (s *Service) Create(ctx context.Context, interviewID, questionID int64, text, fileName string, file io.Reader) (Answer, error) {
	if interviewID <= 0 || questionID <= 0 {
		return Answer{}, ErrInvalidInput
	}

	ans := Answer{
		InterviewID: interviewID,
		QuestionID:  questionID,
		AnswerText:  text,
	}

	if file != nil && fileName != "" {
		key, _, mimeType, err := s.Store.Save(ctx, fileName, file)
		if err != nil {
			return Answer{}, err
		}
		ans.UploadedFilePath = key

		if ans.AnswerText == "" {
			extracted, err := extract.AnswerText(ctx, s.Store, key, mimeType, fileName)
			if err != nil {
				telemetry.Error("answer.extract_failed", map[string]any{
					"interview_id": interviewID,
					"question_id":  questionID,
					"file":         key,
					"error":        err.Error(),
				})
			} else {
				ans.AnswerText = extracted
			}
		}
	}

	id, err := s.Repo.Create(ctx, ans)
	if err != nil {
		return Answer{}, err
	}
	ans.ID = id
	return ans, nil
}
