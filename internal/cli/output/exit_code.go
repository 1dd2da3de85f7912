package output

import (
	"strings"
	"sync/atomic"
)

const (
	CodeInvalidArgument = "INVALID_ARGUMENT"
	CodeStoreWriteError = "STORE_WRITE_ERROR"
	CodeExportError     = "EXPORT_ERROR"
	CodeConfigError     = "CONFIG_ERROR"
	CodeInternalError   = "INTERNAL_ERROR"
)

var processExitCode atomic.Int32

func ResetProcessExitCode() {
	processExitCode.Store(0)
}

func CurrentProcessExitCode() int {
	return int(processExitCode.Load())
}

func SetProcessExitCodeFromEnvelope(envelope Envelope) {
	if envelope.Ok || envelope.Error == nil {
		processExitCode.Store(0)
		return
	}

	processExitCode.Store(int32(ExitCodeForErrorCode(envelope.Error.Code)))
}

func ExitCodeForErrorCode(errorCode string) int {
	switch strings.ToUpper(strings.TrimSpace(errorCode)) {
	case CodeInvalidArgument:
		return 2
	case CodeStoreWriteError:
		return 5
	case CodeExportError:
		return 6
	case CodeConfigError:
		return 7
	case CodeInternalError:
		return 1
	default:
		return 1
	}
}
