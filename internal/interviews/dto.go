package interviews

import (
	"github.com/gin-gonic/gin"

	"interview-backend/internal/evaluation"
)

// toDashboardResponse is the outward-facing shape of the dashboard join.
func toDashboardResponse(dash Dashboard) gin.H {
	answerList := make([]gin.H, 0, len(dash.Answers))
	for _, a := range dash.Answers {
		answerList = append(answerList, gin.H{
			"answer_id":   a.ID,
			"question_id": a.QuestionID,
			"answer_text": a.AnswerText,
			"file":        a.UploadedFilePath,
			"score":       a.Score,
			"scored":      a.Scored,
		})
	}

	var result gin.H
	if dash.Result != nil {
		result = gin.H{
			"total_score": dash.Result.TotalScore,
			"verdict":     dash.Result.Verdict,
			"details":     evaluation.DecodeDetails(dash.Result.Details),
		}
	}

	return gin.H{
		"interview": gin.H{
			"id":     dash.Interview.ID,
			"skill":  dash.Interview.Skill,
			"status": dash.Interview.Status,
		},
		"candidate": gin.H{
			"id":    dash.Candidate.ID,
			"name":  dash.Candidate.Name,
			"email": dash.Candidate.Email,
		},
		"answers": answerList,
		"result":  result,
	}
}
