// Package filemonitor 以轮询方式跟踪作业文件夹中的文件列表
package filemonitor

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// Monitor 作业文件夹监视器
// 只比较文件名集合，不关心文件内容变化
type Monitor struct {
	path string

	mu    sync.Mutex
	known map[string]struct{}
}

// New 创建监视器并记录当前文件列表作为基线
func New(path string) (*Monitor, error) {
	m := &Monitor{path: path}
	names, err := m.Snapshot()
	if err != nil {
		return nil, err
	}
	m.known = toSet(names)
	return m, nil
}

// Path 返回被监视的目录
func (m *Monitor) Path() string {
	return m.path
}

// Snapshot 列出目录中的普通文件名（已排序）
// 目录不存在时返回空列表
func (m *Monitor) Snapshot() ([]string, error) {
	entries, err := os.ReadDir(m.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("读取作业目录失败: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

// CheckForChanges 与上次记录的文件列表比较，并把基线更新为当前列表
func (m *Monitor) CheckForChanges() (added, removed []string, changed bool, err error) {
	names, err := m.Snapshot()
	if err != nil {
		return nil, nil, false, err
	}
	current := toSet(names)

	m.mu.Lock()
	defer m.mu.Unlock()

	added = []string{}
	removed = []string{}
	for name := range current {
		if _, ok := m.known[name]; !ok {
			added = append(added, name)
		}
	}
	for name := range m.known {
		if _, ok := current[name]; !ok {
			removed = append(removed, name)
		}
	}
	sort.Strings(added)
	sort.Strings(removed)

	changed = len(added) > 0 || len(removed) > 0
	if changed {
		m.known = current
	}
	return added, removed, changed, nil
}

// Known 返回当前基线中的文件名（已排序）
func (m *Monitor) Known() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	names := make([]string, 0, len(m.known))
	for name := range m.known {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FilesFor 返回文件名中包含学号的文件（已排序）
func (m *Monitor) FilesFor(studentID string) []string {
	return MatchStudent(m.Known(), studentID)
}

// ModTime 返回目录内某个文件的修改时间
func (m *Monitor) ModTime(name string) (time.Time, error) {
	info, err := os.Stat(filepath.Join(m.path, name))
	if err != nil {
		return time.Time{}, err
	}
	return info.ModTime(), nil
}

// MatchStudent 从文件名列表中筛选包含学号的文件
// 空学号不匹配任何文件
func MatchStudent(names []string, studentID string) []string {
	matched := []string{}
	if studentID == "" {
		return matched
	}
	for _, name := range names {
		if strings.Contains(name, studentID) {
			matched = append(matched, name)
		}
	}
	sort.Strings(matched)
	return matched
}

func toSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}
