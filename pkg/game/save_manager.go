package game

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// gdata 存储路径常量
const (
	layoutObject   = "layout"
	layoutProperty = "current"
)

// layoutStore 存档后端
type layoutStore interface {
	read() ([]byte, error) // 不存在时返回 ErrMissingSaveFile
	write(data []byte) error
	exists() bool
	remove() error
	describe() string
}

// LayoutSaveManager 布局存档管理器
//
// 职责：
//   - 将 GridModel 序列化为 YAML 并写入固定位置（每次覆盖）
//   - 从固定位置加载并还原 GridModel
//
// 后端选择：
//   - gdataManager 非 nil：使用 gdata 跨平台存储（对象 layout / 属性 current）
//   - gdataManager 为 nil：降级为配置中的固定文件路径
type LayoutSaveManager struct {
	store layoutStore
}

// NewLayoutSaveManager 创建存档管理器
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil
//   - fallbackPath: gdataManager 为 nil 时使用的存档文件路径
//
// 返回：
//   - *LayoutSaveManager: 存档管理器
//   - error: 两个后端都不可用时返回错误
func NewLayoutSaveManager(gdataManager *gdata.Manager, fallbackPath string) (*LayoutSaveManager, error) {
	if gdataManager != nil {
		return &LayoutSaveManager{store: &gdataLayoutStore{manager: gdataManager}}, nil
	}
	if fallbackPath == "" {
		return nil, fmt.Errorf("no gdata manager and no save path configured")
	}
	return &LayoutSaveManager{store: &fileLayoutStore{path: fallbackPath}}, nil
}

// Location 返回存档位置描述（用于提示和日志）
func (sm *LayoutSaveManager) Location() string {
	return sm.store.describe()
}

// HasSave 检查是否存在存档
func (sm *LayoutSaveManager) HasSave() bool {
	return sm.store.exists()
}

// Save 保存网格到存档
func (sm *LayoutSaveManager) Save(g *GridModel) error {
	record := SaveLayout(g)

	data, err := yaml.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal layout: %w", err)
	}

	if err := sm.store.write(data); err != nil {
		return fmt.Errorf("failed to write layout: %w", err)
	}

	log.Printf("[LayoutSaveManager] Saved layout to %s: Tiles=%d, Pending=%d, Placed=%d",
		sm.store.describe(), record.Tiles.Len(), len(record.Buildings), len(record.Placed))
	return nil
}

// Load 从存档加载网格
//
// 返回：
//   - *GridModel: 还原后的新网格（调用方决定是否替换当前网格）
//   - error: 存档不存在返回 ErrMissingSaveFile；内容损坏返回 ErrInvalidRecord
func (sm *LayoutSaveManager) Load() (*GridModel, error) {
	data, err := sm.store.read()
	if err != nil {
		return nil, err
	}

	var record LayoutRecord
	if err := yaml.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to parse layout: %v: %w", err, ErrInvalidRecord)
	}

	g, err := LoadLayout(&record)
	if err != nil {
		return nil, err
	}

	log.Printf("[LayoutSaveManager] Loaded layout from %s: Tiles=%d, Pending=%d, Placed=%d",
		sm.store.describe(), g.Len(), g.Pending().Len(), len(g.placed))
	return g, nil
}

// Delete 删除存档，存档不存在不视为错误
func (sm *LayoutSaveManager) Delete() error {
	if err := sm.store.remove(); err != nil {
		return fmt.Errorf("failed to delete layout: %w", err)
	}
	return nil
}

// gdataLayoutStore gdata 后端
type gdataLayoutStore struct {
	manager *gdata.Manager
}

func (s *gdataLayoutStore) read() ([]byte, error) {
	if !s.manager.ObjectPropExists(layoutObject, layoutProperty) {
		return nil, ErrMissingSaveFile
	}
	data, err := s.manager.LoadObjectProp(layoutObject, layoutProperty)
	if err != nil {
		return nil, fmt.Errorf("failed to load layout: %w", err)
	}
	return data, nil
}

func (s *gdataLayoutStore) write(data []byte) error {
	return s.manager.SaveObjectProp(layoutObject, layoutProperty, data)
}

func (s *gdataLayoutStore) exists() bool {
	return s.manager.ObjectPropExists(layoutObject, layoutProperty)
}

func (s *gdataLayoutStore) remove() error {
	if !s.exists() {
		return nil
	}
	return s.manager.DeleteObjectProp(layoutObject, layoutProperty)
}

func (s *gdataLayoutStore) describe() string {
	return "gdata:" + layoutObject + "/" + layoutProperty
}

// fileLayoutStore 固定文件路径后端
type fileLayoutStore struct {
	path string
}

func (s *fileLayoutStore) read() ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrMissingSaveFile
		}
		return nil, fmt.Errorf("failed to read layout file: %w", err)
	}
	return data, nil
}

func (s *fileLayoutStore) write(data []byte) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create save directory: %w", err)
		}
	}
	return os.WriteFile(s.path, data, 0644)
}

func (s *fileLayoutStore) exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

func (s *fileLayoutStore) remove() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func (s *fileLayoutStore) describe() string {
	return s.path
}
