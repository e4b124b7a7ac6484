package metrics

import (
	"fmt"
	"math"
	"strconv"

	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatValue formata o valor conforme o tipo da métrica
func FormatValue(targetType domain.TargetType, value float64) string {
	switch targetType {
	case domain.TargetCurrency:
		if value < 0 {
			return "-" + printer.Sprintf("$%.2f", -value)
		}
		return printer.Sprintf("$%.2f", value)
	case domain.TargetRatio:
		return fmt.Sprintf("%.1f%%", value)
	default:
		return strconv.FormatInt(int64(math.Round(value)), 10)
	}
}

func FormatPercentChange(percent float64) string {
	return fmt.Sprintf("%+.1f%%", percent)
}
