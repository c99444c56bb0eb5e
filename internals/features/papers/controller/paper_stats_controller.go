package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	paperDTO "pyqbank_backend/internals/features/papers/dto"
	"pyqbank_backend/internals/features/papers/model"
	helper "pyqbank_backend/internals/helpers"
)

// GET /api/papers/stats/overview (admin only)
func (pc *PaperController) GetPaperStats(c *fiber.Ctx) error {
	var totalPapers, approvedPapers int64
	if err := pc.DB.Model(&model.PaperModel{}).Count(&totalPapers).Error; err != nil {
		return pc.statsError(c, err)
	}
	if err := pc.DB.Model(&model.PaperModel{}).Where("approved = TRUE").Count(&approvedPapers).Error; err != nil {
		return pc.statsError(c, err)
	}

	type sums struct {
		Views     int64
		Downloads int64
	}
	var totals sums
	err := pc.DB.Model(&model.PaperModel{}).
		Select("COALESCE(SUM(views), 0) AS views, COALESCE(SUM(downloads), 0) AS downloads").
		Scan(&totals).Error
	if err != nil {
		return pc.statsError(c, err)
	}

	var recent []model.PaperModel
	if err := pc.DB.Order("created_at DESC").Limit(5).Find(&recent).Error; err != nil {
		return pc.statsError(c, err)
	}
	var topViewed []model.PaperModel
	if err := pc.DB.Order("views DESC").Limit(5).Find(&topViewed).Error; err != nil {
		return pc.statsError(c, err)
	}

	type deptRow struct {
		Department string `json:"department"`
		Count      int64  `json:"count"`
	}
	var byDepartment []deptRow
	err = pc.DB.Model(&model.PaperModel{}).
		Select("department, COUNT(*) AS count").
		Group("department").
		Order("count DESC").
		Scan(&byDepartment).Error
	if err != nil {
		return pc.statsError(c, err)
	}

	type monthRow struct {
		Month string `json:"month"`
		Count int64  `json:"count"`
	}
	var monthly []monthRow
	since := time.Now().UTC().AddDate(0, -12, 0)
	err = pc.DB.Model(&model.PaperModel{}).
		Select("to_char(created_at, 'YYYY-MM') AS month, COUNT(*) AS count").
		Where("created_at >= ?", since).
		Group("month").
		Order("month ASC").
		Scan(&monthly).Error
	if err != nil {
		return pc.statsError(c, err)
	}

	return helper.JsonOK(c, "Paper stats fetched successfully", fiber.Map{
		"total_papers":    totalPapers,
		"approved_papers": approvedPapers,
		"pending_papers":  totalPapers - approvedPapers,
		"total_views":     totals.Views,
		"total_downloads": totals.Downloads,
		"recent_papers":   pc.toResponses(recent),
		"top_viewed":      pc.toResponses(topViewed),
		"by_department":   byDepartment,
		"monthly_uploads": monthly,
	})
}

func (pc *PaperController) toResponses(papers []model.PaperModel) []paperDTO.PaperResponse {
	uploaders := pc.loadUploaders(papers)
	out := make([]paperDTO.PaperResponse, 0, len(papers))
	for i := range papers {
		out = append(out, paperDTO.FromModel(&papers[i], uploaders[papers[i].UploaderID]))
	}
	return out
}

func (pc *PaperController) statsError(c *fiber.Ctx, err error) error {
	log.Printf("[ERROR] paper stats: %v", err)
	return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to get paper stats")
}
