package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatVND(t *testing.T) {
	assert.Equal(t, "0 VNĐ", FormatVND(0))
	assert.Equal(t, "500 VNĐ", FormatVND(500))
	assert.Equal(t, "1.500 VNĐ", FormatVND(1500))
	assert.Equal(t, "150.000 VNĐ", FormatVND(150000))
	assert.Equal(t, "1.460.000 VNĐ", FormatVND(1460000))
	assert.Equal(t, "-150.000 VNĐ", FormatVND(-150000))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "25/12/2026", FormatDate("2026-12-25"))
	assert.Equal(t, "not-a-date", FormatDate("not-a-date"))
}
