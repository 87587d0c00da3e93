package errs

import (
	"errors"
	"fmt"
)

// ConfigurationError 缺少必要配置（通常是 API 凭证）。只影响当前调用，不影响进程。
type ConfigurationError struct {
	Setting string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s is not set in environment variables", e.Setting)
}

// UpstreamError 外部服务返回非成功状态，或网络调用本身失败
type UpstreamError struct {
	Provider   string
	StatusCode int    // 0 表示没有拿到 HTTP 响应
	Status     string // 响应体中的业务状态，HTTP 成功但业务失败时设置
	Detail     string // 业务错误说明，可为空
	Body       string // 原始响应体，便于排查
	Err        error
}

func (e *UpstreamError) Error() string {
	switch {
	case e.Status != "" && e.Detail != "":
		return fmt.Sprintf("%s returned status: %s (%s)", e.Provider, e.Status, e.Detail)
	case e.Status != "":
		return fmt.Sprintf("%s returned status: %s", e.Provider, e.Status)
	case e.StatusCode != 0:
		return fmt.Sprintf("%s error %d: %s", e.Provider, e.StatusCode, e.Body)
	case e.Err != nil:
		return fmt.Sprintf("%s request failed: %v", e.Provider, e.Err)
	default:
		return fmt.Sprintf("%s returned an empty response: %s", e.Provider, e.Body)
	}
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// AIResponseError AI 服务正常返回，但文本无法解析为预期的 JSON
type AIResponseError struct {
	Raw string // 未经处理的原始回复
	Err error
}

func (e *AIResponseError) Error() string {
	return fmt.Sprintf("failed to parse AI response as JSON: %v. Raw response: %s", e.Err, e.Raw)
}

func (e *AIResponseError) Unwrap() error { return e.Err }

// IsConfiguration 判断错误链中是否包含 ConfigurationError
func IsConfiguration(err error) bool {
	var target *ConfigurationError
	return errors.As(err, &target)
}

// IsUpstream 判断错误链中是否包含 UpstreamError
func IsUpstream(err error) bool {
	var target *UpstreamError
	return errors.As(err, &target)
}

// RawAIResponse 取出 AIResponseError 中保存的原始文本
func RawAIResponse(err error) (string, bool) {
	var target *AIResponseError
	if errors.As(err, &target) {
		return target.Raw, true
	}
	return "", false
}
