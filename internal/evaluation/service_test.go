package evaluation

import (
	"context"
	"errors"
	"strings"
	"testing"

	"interview-backend/internal/answers"
	"interview-backend/internal/questions"
)

// fakeInterviews is a minimal InterviewSource recording status writes.
type fakeInterviews struct {
	statuses map[int64]string
}

func (f *fakeInterviews) Exists(ctx context.Context, id int64) (bool, error) {
	_, ok := f.statuses[id]
	return ok, nil
}

func (f *fakeInterviews) SetStatus(ctx context.Context, id int64, status string) error {
	if _, ok := f.statuses[id]; !ok {
		return errors.New("interview not found")
	}
	f.statuses[id] = status
	return nil
}

type serviceFixture struct {
	svc        *Service
	answers    *answers.MemoryRepo
	questions  *questions.MemoryRepo
	interviews *fakeInterviews
	questionID int64
}

// setupService wires a Service over in-memory stores with one interview and a
// question whose seven keywords are each worth exactly ten points.
func setupService(t *testing.T, interviewID int64) *serviceFixture {
	t.Helper()

	qRepo := questions.NewMemoryRepo()
	qID, err := qRepo.Create(context.Background(), questions.Question{
		Skill:            "sql",
		Text:             "Explain joins.",
		ExpectedKeywords: "kw1,kw2,kw3,kw4,kw5,kw6,kw7",
	})
	if err != nil {
		t.Fatalf("seed question: %v", err)
	}

	aRepo := answers.NewMemoryRepo()
	ivs := &fakeInterviews{statuses: map[int64]string{interviewID: "completed"}}

	return &serviceFixture{
		svc: &Service{
			Answers:   aRepo,
			Questions: qRepo,
			Store:     NewMemoryStore(aRepo, ivs),
		},
		answers:    aRepo,
		questions:  qRepo,
		interviews: ivs,
		questionID: qID,
	}
}

// answerText returns text matching the first n keywords, padded past the full
// length bonus. Its score is n*10 + 30.
func answerText(n int) string {
	keywords := []string{"kw1", "kw2", "kw3", "kw4", "kw5", "kw6", "kw7"}
	return strings.Join(keywords[:n], " ") + " " + strings.Repeat("z", 200)
}

func (f *serviceFixture) addAnswer(t *testing.T, interviewID int64, text string) int64 {
	t.Helper()
	id, err := f.answers.Create(context.Background(), answers.Answer{
		InterviewID: interviewID,
		QuestionID:  f.questionID,
		AnswerText:  text,
	})
	if err != nil {
		t.Fatalf("seed answer: %v", err)
	}
	return id
}

func TestEvaluateInterviewConsiderVerdict(t *testing.T) {
	f := setupService(t, 1)
	f.addAnswer(t, 1, answerText(6)) // 90
	f.addAnswer(t, 1, answerText(3)) // 60
	f.addAnswer(t, 1, answerText(0)) // 30

	res, details, err := f.svc.EvaluateInterview(context.Background(), 1)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if res.TotalScore != 60 {
		t.Fatalf("expected total 60, got %v", res.TotalScore)
	}
	if res.Verdict != VerdictConsider {
		t.Fatalf("expected verdict %q, got %q", VerdictConsider, res.Verdict)
	}
	if len(details) != 3 {
		t.Fatalf("expected 3 answer details, got %d", len(details))
	}
	wantScores := []float64{90, 60, 30}
	for i, d := range details {
		if d.Score != wantScores[i] {
			t.Fatalf("answer %d: expected score %v, got %v", i, wantScores[i], d.Score)
		}
	}
	if f.interviews.statuses[1] != "done" {
		t.Fatalf("expected interview status done, got %q", f.interviews.statuses[1])
	}
}

func TestEvaluateInterviewPassVerdict(t *testing.T) {
	f := setupService(t, 1)
	f.addAnswer(t, 1, answerText(5)) // 80
	f.addAnswer(t, 1, answerText(5)) // 80

	res, _, err := f.svc.EvaluateInterview(context.Background(), 1)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if res.TotalScore != 80 || res.Verdict != VerdictPass {
		t.Fatalf("expected 80/%s, got %v/%s", VerdictPass, res.TotalScore, res.Verdict)
	}
}

func TestEvaluateInterviewFailVerdict(t *testing.T) {
	f := setupService(t, 1)
	f.addAnswer(t, 1, answerText(1)) // 40
	f.addAnswer(t, 1, answerText(0)) // 30

	res, _, err := f.svc.EvaluateInterview(context.Background(), 1)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if res.TotalScore != 35 || res.Verdict != VerdictFail {
		t.Fatalf("expected 35/%s, got %v/%s", VerdictFail, res.TotalScore, res.Verdict)
	}
}

func TestEvaluateInterviewWritesScoresOntoAnswers(t *testing.T) {
	f := setupService(t, 1)
	answerID := f.addAnswer(t, 1, answerText(7)) // 100

	if _, _, err := f.svc.EvaluateInterview(context.Background(), 1); err != nil {
		t.Fatalf("evaluate: %v", err)
	}

	ans, err := f.answers.GetByID(context.Background(), answerID)
	if err != nil {
		t.Fatalf("get answer: %v", err)
	}
	if !ans.Scored || ans.Score != 100 {
		t.Fatalf("expected scored answer at 100, got scored=%v score=%v", ans.Scored, ans.Score)
	}
	if !strings.Contains(ans.EvaluatorNotes, "7/7 keywords matched") {
		t.Fatalf("expected evaluator notes on answer, got %q", ans.EvaluatorNotes)
	}
}

func TestEvaluateInterviewReEvaluationOverwrites(t *testing.T) {
	f := setupService(t, 1)
	f.addAnswer(t, 1, answerText(5))

	first, _, err := f.svc.EvaluateInterview(context.Background(), 1)
	if err != nil {
		t.Fatalf("first evaluate: %v", err)
	}

	f.addAnswer(t, 1, answerText(0))
	second, _, err := f.svc.EvaluateInterview(context.Background(), 1)
	if err != nil {
		t.Fatalf("second evaluate: %v", err)
	}

	if second.ID != first.ID {
		t.Fatalf("expected re-evaluation to keep result id %d, got %d", first.ID, second.ID)
	}
	if second.TotalScore != 55 {
		t.Fatalf("expected recomputed total 55, got %v", second.TotalScore)
	}

	stored, err := f.svc.Store.GetResult(context.Background(), 1)
	if err != nil {
		t.Fatalf("get result: %v", err)
	}
	if stored.TotalScore != second.TotalScore || stored.Verdict != second.Verdict {
		t.Fatalf("stored result not overwritten: %+v", stored)
	}
}

func TestEvaluateInterviewNoAnswers(t *testing.T) {
	f := setupService(t, 1)
	_, _, err := f.svc.EvaluateInterview(context.Background(), 1)
	if !errors.Is(err, ErrNoAnswers) {
		t.Fatalf("expected ErrNoAnswers, got %v", err)
	}
}

func TestEvaluateInterviewUnknownInterview(t *testing.T) {
	f := setupService(t, 1)
	_, _, err := f.svc.EvaluateInterview(context.Background(), 42)
	if !errors.Is(err, ErrInterviewNotFound) {
		t.Fatalf("expected ErrInterviewNotFound, got %v", err)
	}
}

func TestEvaluateAnswerMissingQuestionScoresLengthOnly(t *testing.T) {
	f := setupService(t, 1)
	id, err := f.answers.Create(context.Background(), answers.Answer{
		InterviewID: 1,
		QuestionID:  999,
		AnswerText:  strings.Repeat("z", 200),
	})
	if err != nil {
		t.Fatalf("seed answer: %v", err)
	}

	detail, err := f.svc.EvaluateAnswer(context.Background(), id)
	if err != nil {
		t.Fatalf("evaluate answer: %v", err)
	}
	if detail.Score != 30 {
		t.Fatalf("expected length-only score 30, got %v", detail.Score)
	}
}

func TestEvaluateAnswerUnknownAnswer(t *testing.T) {
	f := setupService(t, 1)
	_, err := f.svc.EvaluateAnswer(context.Background(), 77)
	if !errors.Is(err, answers.ErrNotFound) {
		t.Fatalf("expected answers.ErrNotFound, got %v", err)
	}
}

func TestGetResultBeforeEvaluation(t *testing.T) {
	f := setupService(t, 1)
	_, _, err := f.svc.GetResult(context.Background(), 1)
	if !errors.Is(err, ErrResultNotFound) {
		t.Fatalf("expected ErrResultNotFound, got %v", err)
	}
}

func TestGetResultDecodesDetails(t *testing.T) {
	f := setupService(t, 1)
	f.addAnswer(t, 1, answerText(2))

	if _, _, err := f.svc.EvaluateInterview(context.Background(), 1); err != nil {
		t.Fatalf("evaluate: %v", err)
	}

	_, decoded, err := f.svc.GetResult(context.Background(), 1)
	if err != nil {
		t.Fatalf("get result: %v", err)
	}
	details, ok := decoded.([]AnswerDetail)
	if !ok {
		t.Fatalf("expected decoded details, got %T", decoded)
	}
	if len(details) != 1 || details[0].Score != 50 {
		t.Fatalf("unexpected decoded details: %+v", details)
	}
}

func TestDecodeDetailsMalformedBlob(t *testing.T) {
	got := DecodeDetails("not json")
	if got != "not json" {
		t.Fatalf("expected raw blob passthrough, got %v", got)
	}
}
