package pipeline

import (
	"fmt"

	"github.com/docketwatch/docket-api/internal/docket"
)

// OneLineOutput renders a compact single-line docket summary.
type OneLineOutput struct{}

func newOneLineOutput(Args) (Output, error) {
	return &OneLineOutput{}, nil
}

// Render produces "[docket][type][court] name flags".
func (o *OneLineOutput) Render(ref *Ref, _ Match) (string, error) {
	info, err := ref.Info()
	if err != nil {
		return "", err
	}
	abbr := docket.CourtAbbreviation(info.LowerCourt)
	return fmt.Sprintf("[%8s][%11s][%5s] %s %s",
		info.DocketString(), info.CaseType, abbr, info.CaseName, info.FlagString()), nil
}
