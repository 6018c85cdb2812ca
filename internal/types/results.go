package types

import (
	"github.com/paavkar/AgricultureApp/internal/errs"
)

// Result envelopes. Every service operation returns one of these
// instead of raising across the boundary: Succeeded, a machine code on
// failure, and developer-readable messages. The HTTP layer maps
// Status; localization happens outside the core keyed by Code.

type BaseResult struct {
	Succeeded bool           `json:"succeeded"`
	Code      string         `json:"code,omitempty"`
	Errors    []string       `json:"errors,omitempty"`
	Params    map[string]any `json:"params,omitempty"`
	Status    int            `json:"-"`
}

func OK() BaseResult {
	return BaseResult{Succeeded: true}
}

func Fail(err *errs.AppError) BaseResult {
	if err == nil {
		return OK()
	}
	return BaseResult{
		Succeeded: false,
		Code:      err.Code,
		Errors:    []string{err.Message},
		Params:    err.Params,
		Status:    err.HTTPStatus,
	}
}

type FarmResult struct {
	BaseResult
	Farm *Farm `json:"farm,omitempty"`
}

type FarmInfoResult struct {
	BaseResult
	Farm *FarmInfo `json:"farm,omitempty"`
}

type FarmListResult struct {
	BaseResult
	Farms []*FarmInfo `json:"farms,omitempty"`
}

type ManagerResult struct {
	BaseResult
	Manager *FarmManagerInfo `json:"manager,omitempty"`
}

type FieldResult struct {
	BaseResult
	Field *FieldInfo `json:"field,omitempty"`
}

type CultivationResult struct {
	BaseResult
	Cultivation *CultivationInfo `json:"cultivation,omitempty"`
}

type CultivationListResult struct {
	BaseResult
	Cultivations []CultivationInfo `json:"cultivations,omitempty"`
}
