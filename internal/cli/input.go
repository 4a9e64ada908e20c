package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrCanceled 表单中途输入 cancel 哨兵时返回；提交前不会有任何写入。
var ErrCanceled = errors.New("canceled")

// CancelSentinel 任何表单里输入该词即放弃当前操作。
const CancelSentinel = "cancel"

// IsCancel 判断一行输入是否为取消哨兵（大小写不敏感）。
func IsCancel(line string) bool {
	return strings.EqualFold(strings.TrimSpace(line), CancelSentinel)
}

// isYes 破坏性操作的确认应答。
func isYes(line string) bool {
	return strings.EqualFold(strings.TrimSpace(line), "yes")
}

// Prompter 行式交互：显示提示，读取一行应答。
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Printf 输出到交互终端。
func (p *Prompter) Printf(format string, args ...interface{}) {
	fmt.Fprintf(p.out, format, args...)
}

// Ask 显示提示并读取一行（去掉行尾换行与首尾空白）。
func (p *Prompter) Ask(query string) (string, error) {
	fmt.Fprint(p.out, query)
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// AskField 读取一个表单字段；输入取消哨兵时返回 ErrCanceled。
func (p *Prompter) AskField(query string) (string, error) {
	line, err := p.Ask(query)
	if err != nil {
		return "", err
	}
	if IsCancel(line) {
		return "", ErrCanceled
	}
	return line, nil
}

// AskID 读取一个数字 ID；取消返回 ErrCanceled，非数字返回解析错误。
func (p *Prompter) AskID(query string) (uint, error) {
	line, err := p.AskField(query)
	if err != nil {
		return 0, err
	}
	return ParseID(line)
}

// ParseID 解析正整数 ID。
func ParseID(s string) (uint, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil || v == 0 {
		return 0, fmt.Errorf("invalid id: %q", s)
	}
	return uint(v), nil
}

// ParseOptionalInt 空串表示“跳过该字段”，返回 0；负数视为非法输入。
func ParseOptionalInt(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("invalid number: %q", s)
	}
	return v, nil
}

// ParseOptionalFloat 空串表示“跳过该字段”，返回 0；负数视为非法输入。
func ParseOptionalFloat(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("invalid number: %q", s)
	}
	return v, nil
}
