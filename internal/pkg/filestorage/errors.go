package filestorage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"strings"
	"syscall"

	"github.com/aws/smithy-go"
	"github.com/yigit/courseboard/internal/pkg/apperrors"
)

// ErrorCode classifies a storage failure.
type ErrorCode string

const (
	CodeBucketNotFound     ErrorCode = "BUCKET_NOT_FOUND"
	CodeObjectNotFound     ErrorCode = "OBJECT_NOT_FOUND"
	CodeAccessDenied       ErrorCode = "ACCESS_DENIED"
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeNetworkError       ErrorCode = "NETWORK_ERROR"
	CodeEmptyResponse      ErrorCode = "EMPTY_RESPONSE"
	CodeUnknown            ErrorCode = "UNKNOWN"
)

// StorageError is a classified document store failure.
type StorageError struct {
	Code ErrorCode
	Key  string
	Err  error
}

func (e *StorageError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("storage %s for %q: %v", e.Code, e.Key, e.Err)
	}
	return fmt.Sprintf("storage %s for %q", e.Code, e.Key)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// HTTPError maps the failure onto the application taxonomy.
func (e *StorageError) HTTPError() *apperrors.HTTPError {
	switch e.Code {
	case CodeObjectNotFound:
		return apperrors.NotFound("trace document", "key", e.Key)
	case CodeAccessDenied:
		return apperrors.Forbidden("access to trace document storage denied")
	default:
		return apperrors.InternalError("failed to access trace document storage")
	}
}

// Classify wraps err into a StorageError for key. It returns nil for nil.
func Classify(err error, key string) *StorageError {
	if err == nil {
		return nil
	}

	var storageErr *StorageError
	if errors.As(err, &storageErr) {
		return storageErr
	}

	return &StorageError{Code: classify(err), Key: key, Err: err}
}

func classify(err error) ErrorCode {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchBucket":
			return CodeBucketNotFound
		case "NoSuchKey", "NotFound":
			return CodeObjectNotFound
		case "AccessDenied", "Forbidden":
			return CodeAccessDenied
		case "InvalidAccessKeyId", "SignatureDoesNotMatch":
			return CodeInvalidCredentials
		}
	}

	switch {
	case errors.Is(err, fs.ErrNotExist):
		return CodeObjectNotFound
	case errors.Is(err, fs.ErrPermission):
		return CodeAccessDenied
	case errors.Is(err, syscall.ECONNREFUSED), errors.Is(err, syscall.ETIMEDOUT), errors.Is(err, context.DeadlineExceeded):
		return CodeNetworkError
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return CodeNetworkError
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return CodeNetworkError
	}

	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "connection refused") || strings.Contains(msg, "getaddrinfo") || strings.Contains(msg, "no such host") {
		return CodeNetworkError
	}

	return CodeUnknown
}
