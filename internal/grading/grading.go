// Package grading 计算加权总成绩、等级与排名
//
// 缺失的成绩一律按 0 计入，因此任何学生都有确定的总成绩。
package grading

import (
	"math"
	"sort"
)

// Weights 各成绩组成部分的权重，四项之和为 1
type Weights struct {
	Daily     float64
	Midterm   float64
	Final     float64
	Classroom float64
}

// DefaultWeights 平时 20%、期中 30%、期末 40%、课堂 10%
func DefaultWeights() Weights {
	return Weights{Daily: 0.2, Midterm: 0.3, Final: 0.4, Classroom: 0.1}
}

// Band 成绩等级
type Band string

const (
	BandExcellent Band = "excellent"
	BandGood      Band = "good"
	BandAverage   Band = "average"
	BandPass      Band = "pass"
	BandFail      Band = "fail"
)

// BandFor 按下界包含的阈值划分等级：90 / 80 / 70 / 60
func BandFor(score float64) Band {
	switch {
	case score >= 90:
		return BandExcellent
	case score >= 80:
		return BandGood
	case score >= 70:
		return BandAverage
	case score >= 60:
		return BandPass
	default:
		return BandFail
	}
}

// Label 等级的中文名称（报表导出使用）
func (b Band) Label() string {
	switch b {
	case BandExcellent:
		return "优秀"
	case BandGood:
		return "良好"
	case BandAverage:
		return "中等"
	case BandPass:
		return "及格"
	default:
		return "不及格"
	}
}

// Input 单个学生在某课程某学期的原始成绩
// 未录入的考试类型保持 0
type Input struct {
	StudentID string
	Name      string
	Daily     float64
	Midterm   float64
	Final     float64
	Classroom float64
}

// Row 报表中的一行
type Row struct {
	StudentID string  `json:"student_id"`
	Name      string  `json:"name"`
	Daily     float64 `json:"daily"`
	Midterm   float64 `json:"midterm"`
	Final     float64 `json:"final"`
	Classroom float64 `json:"classroom"`
	Composite float64 `json:"composite"`
	Band      Band    `json:"band"`
	Rank      int     `json:"rank"`
}

// Composite 加权总成绩，保留两位小数
func Composite(w Weights, daily, midterm, final, classroom float64) float64 {
	return Round2(daily*w.Daily + midterm*w.Midterm + final*w.Final + classroom*w.Classroom)
}

// ClassroomComponent 课堂成绩：学生各次课堂活动得分之和除以活动总数
// 未评分的活动按 0 计；没有活动时为 0
func ClassroomComponent(scores []float64, activityCount int) float64 {
	if activityCount <= 0 {
		return 0
	}
	var sum float64
	for _, s := range scores {
		sum += s
	}
	return Round2(sum / float64(activityCount))
}

// Build 计算每个学生的总成绩与等级，并按总成绩降序排名
// inputs 应已按学号升序排列；同分时保持输入顺序，名次依次递增不并列
func Build(w Weights, inputs []Input) []Row {
	rows := make([]Row, len(inputs))
	for i, in := range inputs {
		composite := Composite(w, in.Daily, in.Midterm, in.Final, in.Classroom)
		rows[i] = Row{
			StudentID: in.StudentID,
			Name:      in.Name,
			Daily:     in.Daily,
			Midterm:   in.Midterm,
			Final:     in.Final,
			Classroom: in.Classroom,
			Composite: composite,
			Band:      BandFor(composite),
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Composite > rows[j].Composite
	})
	for i := range rows {
		rows[i].Rank = i + 1
	}
	return rows
}

// Summary 报表统计信息
// 平均分、最高分、最低分与及格率只统计总成绩大于 0 的学生
type Summary struct {
	StudentCount int     `json:"student_count"`
	ScoredCount  int     `json:"scored_count"`
	Average      float64 `json:"average"`
	Max          float64 `json:"max"`
	Min          float64 `json:"min"`
	PassRate     float64 `json:"pass_rate"` // 百分比
	HasData      bool    `json:"has_data"`
}

// Summarize 计算报表统计
func Summarize(rows []Row) Summary {
	s := Summary{StudentCount: len(rows)}

	var sum float64
	passed := 0
	for _, r := range rows {
		if r.Composite <= 0 {
			continue
		}
		if s.ScoredCount == 0 || r.Composite > s.Max {
			s.Max = r.Composite
		}
		if s.ScoredCount == 0 || r.Composite < s.Min {
			s.Min = r.Composite
		}
		s.ScoredCount++
		sum += r.Composite
		if r.Composite >= 60 {
			passed++
		}
	}

	if s.ScoredCount == 0 {
		return s
	}
	s.HasData = true
	s.Average = Round2(sum / float64(s.ScoredCount))
	s.PassRate = Round2(float64(passed) / float64(s.ScoredCount) * 100)
	return s
}

// Round2 四舍五入到两位小数
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
