package game

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// LayoutSaveVersion 当前存档格式版本
//
// 版本历史：
//   - 1: 格子只记录 unlocked
//   - 2: 格子增加 occupied，增加 placed 账本
const LayoutSaveVersion = 2

// LayoutRecord 布局存档记录
//
// 序列化为 YAML，整个布局一个文件，每次保存覆盖。
type LayoutRecord struct {
	Version   int              `yaml:"version"`
	Tiles     TileTable        `yaml:"tiles"`
	Buildings []BuildingRecord `yaml:"buildings"`
	Placed    []PlacedRecord   `yaml:"placed,omitempty"`
}

// TileRecord 单个格子的存档数据
// Occupied 仅在版本 >= 2 时写出
type TileRecord struct {
	Unlocked bool  `yaml:"unlocked"`
	Occupied *bool `yaml:"occupied,omitempty"`
}

// BuildingRecord 待放置建筑的存档数据
//
// Width/Height 保存未旋转时的尺寸，加载时若 Rotated 为 true 会再旋转一次，
// 从而还原当前占地。
type BuildingRecord struct {
	Width     int  `yaml:"width"`
	Height    int  `yaml:"height"`
	Mandatory bool `yaml:"mandatory"`
	Rotated   bool `yaml:"rotated"`
}

// PlacedRecord 已放置建筑的存档数据（实际占地，不做旋转重放）
type PlacedRecord struct {
	ID        string `yaml:"id"`
	X         int    `yaml:"x"`
	Y         int    `yaml:"y"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Mandatory bool   `yaml:"mandatory"`
	Rotated   bool   `yaml:"rotated"`
}

// TileTable 保持插入顺序的 "x,y" -> TileRecord 映射
//
// yaml.v3 序列化普通 map 时会按键排序（"0,10" 排在 "0,2" 前），
// 这里通过 yaml.Node 按插入顺序读写，保证"解锁下一个"的扫描顺序在存档前后一致。
type TileTable struct {
	keys    []string
	entries map[string]TileRecord
}

// Set 写入格子记录，新键追加到末尾
func (tt *TileTable) Set(key string, rec TileRecord) {
	if tt.entries == nil {
		tt.entries = make(map[string]TileRecord)
	}
	if _, ok := tt.entries[key]; !ok {
		tt.keys = append(tt.keys, key)
	}
	tt.entries[key] = rec
}

// Get 读取格子记录
func (tt *TileTable) Get(key string) (TileRecord, bool) {
	rec, ok := tt.entries[key]
	return rec, ok
}

// Keys 按插入顺序返回所有键
func (tt *TileTable) Keys() []string {
	keys := make([]string, len(tt.keys))
	copy(keys, tt.keys)
	return keys
}

// Len 返回记录数量
func (tt *TileTable) Len() int {
	return len(tt.keys)
}

// MarshalYAML 按插入顺序输出映射节点
func (tt TileTable) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, key := range tt.keys {
		valueNode := &yaml.Node{}
		if err := valueNode.Encode(tt.entries[key]); err != nil {
			return nil, fmt.Errorf("failed to encode tile %s: %w", key, err)
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
			valueNode,
		)
	}
	return node, nil
}

// UnmarshalYAML 按文件中的顺序读取映射节点
func (tt *TileTable) UnmarshalYAML(value *yaml.Node) error {
	tt.keys = nil
	tt.entries = make(map[string]TileRecord)

	// 空值（如 "tiles:"）视为空表
	if value.Kind == yaml.ScalarNode && value.Tag == "!!null" {
		return nil
	}
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("tiles: expected a mapping at line %d", value.Line)
	}

	for i := 0; i+1 < len(value.Content); i += 2 {
		keyNode, valueNode := value.Content[i], value.Content[i+1]
		var rec TileRecord
		if err := valueNode.Decode(&rec); err != nil {
			return fmt.Errorf("tile %s: %w", keyNode.Value, err)
		}
		if _, dup := tt.entries[keyNode.Value]; dup {
			return fmt.Errorf("tile %s: duplicate key at line %d", keyNode.Value, keyNode.Line)
		}
		tt.Set(keyNode.Value, rec)
	}
	return nil
}
