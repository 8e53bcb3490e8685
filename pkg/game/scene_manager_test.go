package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// MockScene is a mock implementation of the Scene interface for testing.
type MockScene struct {
	updateCalled bool
	drawCalled   bool
	deltaTime    float64
}

func (m *MockScene) Update(deltaTime float64) {
	m.updateCalled = true
	m.deltaTime = deltaTime
}

func (m *MockScene) Draw(screen *ebiten.Image) {
	m.drawCalled = true
}

// MockSaveableScene 实现 Saveable 的场景
type MockSaveableScene struct {
	MockScene
	saveCalls int
	result    bool
}

func (m *MockSaveableScene) SaveOnExit() bool {
	m.saveCalls++
	return m.result
}

// TestSceneManagerSwitchTo verifies that SwitchTo changes the active scene.
func TestSceneManagerSwitchTo(t *testing.T) {
	sm := NewSceneManager()
	if sm.GetCurrentScene() != nil {
		t.Error("Expected no scene initially")
	}

	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)

	if sm.GetCurrentScene() != mockScene {
		t.Error("SwitchTo did not set the current scene correctly")
	}
}

// TestSceneManagerUpdateDraw verifies that Update and Draw reach the current scene.
func TestSceneManagerUpdateDraw(t *testing.T) {
	sm := NewSceneManager()

	// 没有场景时不应 panic
	sm.Update(0.016)
	sm.Draw(nil)

	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)
	sm.Update(0.016)
	sm.Draw(nil)

	if !mockScene.updateCalled || mockScene.deltaTime != 0.016 {
		t.Errorf("Update not forwarded: called=%v dt=%.3f", mockScene.updateCalled, mockScene.deltaTime)
	}
	if !mockScene.drawCalled {
		t.Error("Draw not forwarded")
	}
}

// TestSceneManagerSaveCurrentScene 测试退出时保存
func TestSceneManagerSaveCurrentScene(t *testing.T) {
	sm := NewSceneManager()
	if !sm.SaveCurrentScene() {
		t.Error("no scene should report success")
	}

	sm.SwitchTo(&MockScene{})
	if !sm.SaveCurrentScene() {
		t.Error("non-saveable scene should report success")
	}

	saveable := &MockSaveableScene{result: false}
	sm.SwitchTo(saveable)
	if sm.SaveCurrentScene() {
		t.Error("failed save should be reported")
	}
	if saveable.saveCalls != 1 {
		t.Errorf("SaveOnExit calls: got %d, want 1", saveable.saveCalls)
	}
}
