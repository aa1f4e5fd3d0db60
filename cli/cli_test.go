package cli

import (
	"bytes"
	"strings"
	"testing"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func setEnv(t *testing.T) {
	t.Helper()
	t.Setenv("TABI_DATA_DIR", t.TempDir())
	t.Setenv("TABI_LOG_LEVEL", "error")
}

func TestMigrateCommands(t *testing.T) {
	setEnv(t)

	steps := []struct {
		args []string
		want string
	}{
		{[]string{"migrate", "status"}, "schema version: 0"},
		{[]string{"migrate", "up"}, "schema version: 1"},
		{[]string{"migrate", "status"}, "schema version: 1"},
		{[]string{"migrate", "down"}, "schema version: 0"},
	}
	for _, s := range steps {
		out, err := run(t, s.args...)
		if err != nil {
			t.Fatalf("%v: unexpected error: %v", s.args, err)
		}
		if !strings.Contains(out, s.want) {
			t.Errorf("%v: expected output to contain %q, got %q", s.args, s.want, out)
		}
	}
}

func TestSeedCommand(t *testing.T) {
	setEnv(t)

	out, err := run(t, "seed", "../seed/testdata/narai.yaml")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if want := "seeded 2 travel plans, 1 accommodations, 2 attractions"; !strings.Contains(out, want) {
		t.Errorf("Expected %q, got %q", want, out)
	}

	// 名前が重複するため2回目は失敗する
	if _, err := run(t, "seed", "../seed/testdata/narai.yaml"); err == nil {
		t.Error("Expected error on duplicate seed")
	}
}

func TestCommandErrors(t *testing.T) {
	tests := []struct {
		description string
		env         map[string]string
		args        []string
	}{
		{"seedの引数なし", nil, []string{"seed"}},
		{"存在しないフィクスチャ", nil, []string{"seed", "testdata/missing.yaml"}},
		{"不正なポート", map[string]string{"TABI_SERVER_PORT": "abc"}, []string{"serve"}},
		{"不正なポートフラグ", nil, []string{"serve", "--port", "abc"}},
		{"範囲外のポートフラグ", nil, []string{"serve", "-p", "65536"}},
		{"空のポートフラグ", nil, []string{"serve", "--port", ""}},
		{"不正なログレベル", map[string]string{"TABI_LOG_LEVEL": "verbose"}, []string{"migrate", "status"}},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			setEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := run(t, tt.args...); err == nil {
				t.Errorf("Expected error for %v", tt.args)
			}
		})
	}
}
