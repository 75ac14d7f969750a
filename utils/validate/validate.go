package validate

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"

	cErr "stundenmanager/internal/pkg/error"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ===== 欄位規則 =====
// 每個 predicate 只看單一值（或一組起迄），不修改輸入也不回傳錯誤

var (
	emailPattern      = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	passwordPattern   = regexp.MustCompile(`^[a-zA-Z0-9äöüÄÖÜ]{6,}$`)
	namePattern       = regexp.MustCompile(`^[a-zA-Z0-9äöüÄÖÜ]+$`)
	streetPattern     = regexp.MustCompile(`^[a-zA-ZäöüÄÖÜß0-9.,\- ]+$`)
	zipCodePattern    = regexp.MustCompile(`^[0-9]{5,7}$`)
	germanDatePattern = regexp.MustCompile(`^\d{2}\.\d{2}\.\d{4}$`)
)

func IsEmailValid(email string) bool {
	return email != "" && emailPattern.MatchString(email)
}

// IsPasswordValid 至少 6 個字元，只允許英數與德文母音變音
func IsPasswordValid(password string) bool {
	return password != "" && passwordPattern.MatchString(password)
}

// IsNameValid 名字 / 姓氏 / 城市共用
func IsNameValid(name string) bool {
	return name != "" && namePattern.MatchString(name)
}

func IsStreetValid(street string) bool {
	return street != "" && streetPattern.MatchString(street)
}

func IsZipCodeValid(zipCode string) bool {
	return zipCode != "" && zipCodePattern.MatchString(zipCode)
}

// IsDateValid 只比對 DD.MM.YYYY 字面格式，不檢查日曆（"32.13.9999" 也會通過）
func IsDateValid(date string) bool {
	return date != "" && germanDatePattern.MatchString(date)
}

// IsTimeValid epoch 毫秒，0 視為未提供
func IsTimeValid(instant int64) bool {
	return instant != 0
}

// IsEndTimeValid 結束時間必須存在且嚴格晚於開始時間
func IsEndTimeValid(start, end int64) bool {
	if !IsTimeValid(end) {
		return false
	}
	return end > start
}

func IsListValid(list []string) bool {
	return len(list) > 0
}

// ===== gin 綁定 =====

// BindRequest 讀取 JSON body；空 body 或 "null" 視為缺少 payload。
// 這裡只做解碼，欄位規則統一在 service 層檢查，才能累積所有錯誤。
// 欄位型別不符時其它欄位仍會解碼，該欄位以 violations 回傳交給 service 一起回報；
// 只有整體無法解碼（語法錯誤、非 object）才直接中斷。
func BindRequest(c *gin.Context, req any) (violations []cErr.Violation, cause error, responseErr error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err, cErr.NullRequest()
	}
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, errors.New("empty payload"), cErr.NullRequest()
	}
	if err := json.Unmarshal(trimmed, req); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return []cErr.Violation{decodeViolation(err)}, nil, nil
		}
		return nil, err, cErr.InvalidArgument([]cErr.Violation{decodeViolation(err)})
	}
	return nil, nil, nil
}

func decodeViolation(err error) cErr.Violation {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return cErr.Violation{
			Field:  typeErr.Field,
			Reason: fmt.Sprintf("%s is not valid.", typeErr.Field),
		}
	}
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return cErr.Violation{Reason: fmt.Sprintf("request body is not valid JSON (offset %d).", syntaxErr.Offset)}
	}
	return cErr.Violation{Reason: "request body is not valid."}
}

// ParseObjectID 將 hex 字串轉為 ObjectID
func ParseObjectID(hex string, field string) (primitive.ObjectID, *cErr.Violation) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, &cErr.Violation{Field: field, Reason: field + " is not valid."}
	}
	return id, nil
}
