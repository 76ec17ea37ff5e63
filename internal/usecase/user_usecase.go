package usecase

import (
	"context"
	"fmt"
	"strings"

	"go-futurehire-backend/internal/domain"
	"go-futurehire-backend/pkg/apperror"

	"github.com/xuri/excelize/v2"
)

type userUsecase struct {
	userRepo domain.UserRepository
}

func NewUserUsecase(userRepo domain.UserRepository) domain.UserUsecase {
	return &userUsecase{userRepo: userRepo}
}

func (u *userUsecase) GetProfile(ctx context.Context) (*domain.User, error) {
	userID, ok := domain.IdentityFromContext(ctx)
	if !ok {
		return nil, apperror.Unauthorized("User not authenticated")
	}
	return u.userRepo.GetByID(ctx, userID)
}

func (u *userUsecase) GetTestHistory(ctx context.Context) ([]domain.TestAttempt, error) {
	userID, ok := domain.IdentityFromContext(ctx)
	if !ok {
		return nil, apperror.Unauthorized("User not authenticated")
	}
	return u.userRepo.GetTestHistory(ctx, userID)
}

// ExportTestHistory renders the caller's attempts as an .xlsx workbook.
func (u *userUsecase) ExportTestHistory(ctx context.Context) ([]byte, error) {
	history, err := u.GetTestHistory(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Test History"
	f.SetSheetName("Sheet1", sheet)

	columns := []string{"Attempt ID", "Test ID", "Score", "Answers", "Submitted At"}
	for i, col := range columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, col)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#1E3A5F"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	endCell, _ := excelize.CoordinatesToCellName(len(columns), 1)
	_ = f.SetCellStyle(sheet, "A1", endCell, headerStyle)

	for rowIdx, attempt := range history {
		answers := make([]string, len(attempt.Result.Answers))
		for i, a := range attempt.Result.Answers {
			answers[i] = fmt.Sprintf("%d", a)
		}
		values := []interface{}{
			attempt.ID,
			attempt.TestID,
			attempt.Result.Score,
			strings.Join(answers, ", "),
			attempt.SubmittedAt.Format("2006-01-02 15:04:05"),
		}
		for colIdx, v := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return buf.Bytes(), nil
}
