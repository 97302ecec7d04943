package errors

import (
	"encoding/json"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(CodeNotFound, "repository not found")

	require.Equal(t, CodeNotFound, err.Code())
	require.Equal(t, ClassificationPermanent, err.Classification())
	require.Equal(t, "repository not found", err.Message())
	require.Nil(t, err.Context())
	require.Nil(t, err.Unwrap())
	require.Equal(t, "[NOT_FOUND] repository not found", err.Error())
}

func TestNewf(t *testing.T) {
	err := Newf(CodeParseFailed, "unexpected line %q", "garbage")
	require.Equal(t, `[PARSE_FAILED] unexpected line "garbage"`, err.Error())
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("exit status 128")
	err := Wrap(cause, CodeExecutionFailed, "git show failed")

	require.Equal(t, CodeExecutionFailed, err.Code())
	require.Equal(t, "[EXECUTION_FAILED] git show failed: exit status 128", err.Error())
	require.True(t, stderrors.Is(err, cause))
}

func TestWrap_Nil(t *testing.T) {
	require.Nil(t, Wrap(nil, CodeInternal, "nothing"))
	require.Nil(t, Wrapf(nil, CodeInternal, "nothing %d", 1))
	require.Nil(t, WrapWithContext(nil, CodeInternal, "nothing", nil))
	require.Nil(t, WithContext(nil, "k", "v"))
}

func TestWrap_PreservesClassification(t *testing.T) {
	timeout := New(CodeTimeout, "git timed out")
	err := Wrap(timeout, CodeExecutionFailed, "git show failed")

	require.Equal(t, CodeExecutionFailed, err.Code())
	require.True(t, IsRetryable(err))
}

func TestWrapWithContext_CopiesMap(t *testing.T) {
	ctx := map[string]interface{}{"path": "README.md"}
	err := WrapWithContext(stderrors.New("boom"), CodeNotFound, "missing", ctx)

	ctx["path"] = "changed"
	assert.Equal(t, "README.md", err.Context()["path"])

	got := err.Context()
	got["path"] = "changed again"
	assert.Equal(t, "README.md", err.Context()["path"])
}

func TestWithContext(t *testing.T) {
	t.Run("platform error keeps code", func(t *testing.T) {
		err := WithContext(New(CodeInvalidConfig, "bad timeout"), "path", "gitshow.toml")
		err = WithContext(err, "field", "timeout")

		require.Equal(t, CodeInvalidConfig, err.Code())
		require.Equal(t, map[string]interface{}{"path": "gitshow.toml", "field": "timeout"}, err.Context())
	})

	t.Run("standard error becomes unknown", func(t *testing.T) {
		cause := stderrors.New("plain")
		err := WithContext(cause, "k", 1)

		require.Equal(t, CodeUnknown, err.Code())
		require.True(t, stderrors.Is(err, cause))
	})
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{name: "nil", err: nil, want: CodeUnknown},
		{name: "standard error", err: stderrors.New("x"), want: CodeUnknown},
		{name: "platform error", err: New(CodeNotADirectory, "blob"), want: CodeNotADirectory},
		{name: "outermost wins", err: Wrap(New(CodeTimeout, "t"), CodeExecutionFailed, "e"), want: CodeExecutionFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, GetCode(tt.err))
		})
	}
}

func TestGetClassification(t *testing.T) {
	require.Equal(t, ClassificationPermanent, GetClassification(nil))
	require.Equal(t, ClassificationPermanent, GetClassification(stderrors.New("x")))
	require.Equal(t, ClassificationRetryable, GetClassification(New(CodeTimeout, "t")))
	require.Equal(t, ClassificationPermanent, GetClassification(New(ErrorCode("CUSTOM"), "c")))
}

func TestIsAs(t *testing.T) {
	sentinel := New(CodeNotFound, "not found")
	wrapped := Wrap(sentinel, CodeExecutionFailed, "failed")

	require.True(t, Is(wrapped, sentinel))

	var platformErr PlatformError
	require.True(t, As(wrapped, &platformErr))
	require.Equal(t, CodeExecutionFailed, platformErr.Code())
}

func TestToJSON(t *testing.T) {
	require.Nil(t, ToJSON(nil))

	resp := ToJSON(WrapWithContext(stderrors.New("exit status 128"), CodeExecutionFailed, "git show failed",
		map[string]interface{}{"stderr": "fatal: bad revision"}))
	require.Equal(t, "EXECUTION_FAILED", resp.Code)
	require.Equal(t, "git show failed", resp.Message)
	require.Equal(t, "PERMANENT", resp.Classification)
	require.Equal(t, "fatal: bad revision", resp.Context["stderr"])

	plain := ToJSON(stderrors.New("plain"))
	require.Equal(t, "UNKNOWN", plain.Code)
	require.Equal(t, "plain", plain.Message)
}

func TestMarshalJSON(t *testing.T) {
	data, err := json.Marshal(New(CodeNotFound, "repository not found"))
	require.NoError(t, err)
	require.JSONEq(t, `{"code":"NOT_FOUND","message":"repository not found","classification":"PERMANENT"}`, string(data))
}
