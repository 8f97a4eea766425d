package exceptions

import (
	"fmt"
	"strings"
	"surveygate-service/internal/pkg/constvars"
)

var (
	// Parse / bind
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrURLQueryParamValidation = func(err error, paramName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevURLQueryParamInvalid, paramName))
	}
	ErrURLParamValidation = func(err error, paramName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevURLParamInvalid, paramName))
	}

	// Survey schema
	ErrSurveyValidation = func(err error) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusUnprocessableEntity, err.Error(), constvars.ErrDevSurveyInvalid)
	}

	ErrInvalidDueDate = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevValidationFailed)
	}

	// LeanIX
	ErrLeanIXConfigInvalid = func(errors []string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusUnprocessableEntity, constvars.ErrClientInvalidLeanIXConfig, fmt.Sprintf(constvars.ErrDevLeanIXConfigInvalid, strings.Join(errors, "; ")))
	}
	ErrLeanIXTokenExchange = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientLeanIXAuthFailed, constvars.ErrDevTokenExchangeFailed)
	}
	ErrLeanIXUnreachable = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusServiceUnavailable, constvars.ErrClientLeanIXUnreachable, constvars.ErrDevSendHTTPRequest)
	}
	ErrLeanIXAPIError = func(statusCode int, detail string) *CustomError {
		return BuildNewCustomError(nil, statusCode, constvars.ErrClientLeanIXRejectedRequest, fmt.Sprintf(constvars.ErrDevLeanIXStatus, statusCode, detail))
	}
	ErrPollNotFound = func(statusCode int, detail string) *CustomError {
		return BuildNewCustomError(nil, statusCode, constvars.ErrClientPollNotFound, fmt.Sprintf(constvars.ErrDevLeanIXStatus, statusCode, detail))
	}

	// Outbound HTTP plumbing
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCreateHTTPRequest)
	}
	ErrReadBody = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevReadResponseBody)
	}
	ErrDecodeResponse = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDecodeResponse)
	}

	// Batch
	ErrBatchEmpty = func() *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrClientBatchEmpty, constvars.ErrDevBatchEmpty)
	}
	ErrBatchTooLarge = func(size, max int) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusUnprocessableEntity, constvars.ErrClientBatchTooLarge, fmt.Sprintf(constvars.ErrDevBatchTooLarge, size, max))
	}

	// Stores
	ErrRedisSet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSet)
	}
	ErrRedisGet = func(err error, key string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRedisGet, key))
	}
	ErrMongoDBInsertDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMongoDBInsert)
	}
	ErrMongoDBFindDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMongoDBFind)
	}

	// Misc
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadline)
	}
)
