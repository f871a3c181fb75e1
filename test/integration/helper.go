package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// 集成测试辅助工具
// 将重复的HTTP请求/JSON解析封装成可复用函数

const (
	// BaseURL API基础URL（与config/config.yaml的端口保持一致）
	BaseURL = "http://localhost:8989"
	// Timeout HTTP请求超时时间
	Timeout = 10 * time.Second
)

// Response HTTP响应（状态码+原始响应体）
// 说明：成功响应是payload原样序列化（字符串或用户记录），
// 错误响应是{"message": "..."}，因此这里保留原始字节由调用方解析
type Response struct {
	StatusCode int
	Body       []byte
}

// UserData 用户记录响应
type UserData struct {
	ID             uint    `json:"id"`
	Name           string  `json:"name"`
	Telephone      string  `json:"telephone"`
	Password       string  `json:"password"`
	Ledger         string  `json:"ledger"`
	SubscriberType string  `json:"subscriber_type"`
	Email          *string `json:"email"`
	Wechat         *string `json:"wechat"`
}

// DoJSON 发送任意方法的JSON请求
func DoJSON(t *testing.T, method, url string, data interface{}) *Response {
	t.Helper()

	var body io.Reader
	if data != nil {
		jsonData, err := json.Marshal(data)
		require.NoError(t, err, "JSON序列化失败")
		body = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err, "创建HTTP请求失败")
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: Timeout}
	resp, err := client.Do(req)
	require.NoError(t, err, "发送HTTP请求失败")
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "读取响应体失败")

	return &Response{StatusCode: resp.StatusCode, Body: raw}
}

// PostJSON 发送POST请求
func PostJSON(t *testing.T, url string, data interface{}) *Response {
	return DoJSON(t, http.MethodPost, url, data)
}

// GetJSON 发送GET请求
func GetJSON(t *testing.T, url string) *Response {
	return DoJSON(t, http.MethodGet, url, nil)
}

// PutJSON 发送PUT请求
func PutJSON(t *testing.T, url string, data interface{}) *Response {
	return DoJSON(t, http.MethodPut, url, data)
}

// DeleteJSON 发送DELETE请求（请求体为裸JSON字符串形式的密码）
func DeleteJSON(t *testing.T, url string, password string) *Response {
	return DoJSON(t, http.MethodDelete, url, password)
}

// Message 解析错误响应体中的message字段
func (r *Response) Message(t *testing.T) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(r.Body, &body), "解析错误响应失败: %s", string(r.Body))
	return body.Message
}

// User 解析用户记录响应体
func (r *Response) User(t *testing.T) *UserData {
	t.Helper()
	var u UserData
	require.NoError(t, json.Unmarshal(r.Body, &u), "解析用户响应失败: %s", string(r.Body))
	return &u
}

// GenerateTestTelephone 生成唯一的11位测试手机号
// 使用时间戳后10位确保重复运行不冲突
func GenerateTestTelephone() string {
	return fmt.Sprintf("1%010d", time.Now().UnixNano()%10000000000)
}

// RegisterTestUser 注册测试用户并返回手机号
func RegisterTestUser(t *testing.T, name, password string) string {
	t.Helper()

	telephone := GenerateTestTelephone()
	resp := PostJSON(t, BaseURL+"/user/register", map[string]string{
		"name":            name,
		"telephone":       telephone,
		"password":        password,
		"ledger":          "main",
		"subscriber_type": "normal",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, "注册失败: %s", string(resp.Body))

	return telephone
}
