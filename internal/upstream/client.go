package upstream

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ystemsrx/smart-shop-sub003/internal/config"
	"github.com/ystemsrx/smart-shop-sub003/internal/session"
)

// API 全局上游客户端，Setup后可用
var API *Client

// Client 上游商城API客户端
// 所有业务数据都在上游，网关的每个读写最终都落到这里。
// 会话不是客户端的字段，而是每次调用显式传入。
type Client struct {
	baseURL string
	httpc   *http.Client
}

// APIError 上游返回的业务错误
type APIError struct {
	Status int    // HTTP状态码
	Code   int    // 业务码
	Msg    string // 上游给的提示信息
}

func (e *APIError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return fmt.Sprintf("上游商城API返回错误: http=%d code=%d", e.Status, e.Code)
}

// 上游统一响应包装
type envelope struct {
	Code int             `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`
}

// Setup 根据配置初始化全局客户端
func Setup() error {
	cfg := config.GlobalConfig.Upstream
	if cfg.BaseURL == "" {
		return fmt.Errorf("上游商城API地址未配置")
	}
	API = New(cfg.BaseURL, time.Duration(cfg.Timeout)*time.Second)
	return nil
}

// New 创建上游客户端
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
	}
}

// Get 带查询参数的GET请求
func (c *Client) Get(sess session.Session, path string, query url.Values, out interface{}) error {
	return c.do(sess, http.MethodGet, path, query, nil, out)
}

// Post 带JSON体的POST请求
func (c *Client) Post(sess session.Session, path string, body, out interface{}) error {
	return c.do(sess, http.MethodPost, path, nil, body, out)
}

// Put 带JSON体的PUT请求
func (c *Client) Put(sess session.Session, path string, body, out interface{}) error {
	return c.do(sess, http.MethodPut, path, nil, body, out)
}

// Delete DELETE请求
func (c *Client) Delete(sess session.Session, path string, out interface{}) error {
	return c.do(sess, http.MethodDelete, path, nil, nil, out)
}

func (c *Client) do(sess session.Session, method, path string, query url.Values, body, out interface{}) error {
	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("编码请求体失败: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, fullURL, reader)
	if err != nil {
		return fmt.Errorf("构造上游请求失败: %v", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	// 每次调用带上请求ID，方便两边对日志
	req.Header.Set("X-Request-ID", uuid.New().String())
	if !sess.Anonymous() {
		req.Header.Set("Authorization", "Bearer "+sess.Token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("请求上游商城API失败: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("读取上游响应失败: %v", err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return &APIError{Status: resp.StatusCode, Msg: "上游响应格式异常"}
	}

	if resp.StatusCode != http.StatusOK || env.Code != 200 {
		return &APIError{Status: resp.StatusCode, Code: env.Code, Msg: env.Msg}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("解析上游数据失败: %v", err)
		}
	}

	return nil
}

// Probe 健康探测，不携带会话
func (c *Client) Probe(path string) error {
	req, err := http.NewRequest(http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("上游健康检查返回 %d", resp.StatusCode)
	}
	return nil
}
