package employeeerrors

import (
	"net/http"

	"github.com/ahmedalsadeqhr/HR-Dashboard/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrExitDateRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Exit Date is required for departed employees",
		http.StatusBadRequest,
	)
	ErrDatasetNotLoaded = apperror.New(
		apperror.CodeConflict,
		"No employee data file has been loaded",
		http.StatusConflict,
	)
)
