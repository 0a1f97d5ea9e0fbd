package handler

import (
	"encoding/csv"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/yourusername/question-service/internal/domain/entity"
)

// ExportQuestions выгружает все вопросы в CSV или XLSX
// GET /api/questions/export?format=csv|xlsx
func (h *QuestionHandler) ExportQuestions(c *gin.Context) {
	format := c.DefaultQuery("format", "csv")

	questions, err := h.questionService.AllQuestions()
	if err != nil {
		handleServiceError(c, err)
		return
	}

	filename := fmt.Sprintf("questions_%s", time.Now().Format("2006-01-02"))

	switch format {
	case "xlsx":
		h.exportXLSX(c, questions, filename)
	default:
		h.exportCSV(c, questions, filename)
	}
}

// exportCSV выгружает вопросы в CSV с корректным экранированием спецсимволов
func (h *QuestionHandler) exportCSV(c *gin.Context, questions []entity.Question, filename string) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.csv\"", filename))

	// BOM для корректного отображения UTF-8 в Excel
	c.Writer.Write([]byte{0xEF, 0xBB, 0xBF})

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write([]string{"ID", "Question", "Answer", "Category", "Difficulty"})

	for _, q := range questions {
		writer.Write([]string{
			strconv.FormatUint(uint64(q.ID), 10),
			q.Question,
			q.Answer,
			strconv.FormatUint(uint64(q.Category), 10),
			strconv.Itoa(q.Difficulty),
		})
	}
}

// exportXLSX выгружает вопросы в XLSX через excelize
func (h *QuestionHandler) exportXLSX(c *gin.Context, questions []entity.Question, filename string) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Questions"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"ID", "Question", "Answer", "Category", "Difficulty"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	for row, q := range questions {
		values := []interface{}{q.ID, q.Question, q.Answer, q.Category, q.Difficulty}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, value)
		}
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.xlsx\"", filename))

	if err := f.Write(c.Writer); err != nil {
		log.Printf("[ExportQuestions] Failed to write xlsx: %v", err)
	}
}
