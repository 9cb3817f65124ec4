package dto

import (
	"regexp"
	"strconv"

	"github.com/go-playground/validator/v10"
)

var termPattern = regexp.MustCompile(`^(\d{4})-(\d{4})-([12])$`)

// IsTerm 学期格式 YYYY-YYYY-N，两个年份相邻，N 为 1 或 2
func IsTerm(s string) bool {
	m := termPattern.FindStringSubmatch(s)
	if m == nil {
		return false
	}
	start, _ := strconv.Atoi(m[1])
	end, _ := strconv.Atoi(m[2])
	return end == start+1
}

// RegisterValidators 在 validator 引擎上注册自定义校验标签
func RegisterValidators(v *validator.Validate) error {
	return v.RegisterValidation("term", func(fl validator.FieldLevel) bool {
		return IsTerm(fl.Field().String())
	})
}
