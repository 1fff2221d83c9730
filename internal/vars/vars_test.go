package vars

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestLoad_Sets(t *testing.T) {
	got, err := Load(Sources{Sets: []string{"a=1", "b=two", "c=with=equals"}})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	want := map[string]string{"a": "1", "b": "two", "c": "with=equals"}
	for key, value := range want {
		if got[key] != value {
			t.Errorf("vars[%q] = %q, want %q", key, got[key], value)
		}
	}
}

func TestLoad_InvalidSet(t *testing.T) {
	_, err := Load(Sources{Sets: []string{"novalue"}})
	if err == nil {
		t.Fatal("expected error for --set without '='")
	}
}

func TestLoad_EnvFile(t *testing.T) {
	path := writeFile(t, "test.env", "MONGO_USERNAME=root\nMONGO_PASSWORD=mng233985725\n")

	got, err := Load(Sources{EnvFiles: []string{path}})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if got["MONGO_USERNAME"] != "root" || got["MONGO_PASSWORD"] != "mng233985725" {
		t.Errorf("vars = %v, want dotenv values loaded", got)
	}
}

func TestLoad_JSONVarFile(t *testing.T) {
	path := writeFile(t, "vars.json", `{"host": "localhost", "port": "27017"}`)

	got, err := Load(Sources{VarFiles: []string{path}})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if got["host"] != "localhost" || got["port"] != "27017" {
		t.Errorf("vars = %v, want JSON values loaded", got)
	}
}

func TestLoad_TOMLVarFile(t *testing.T) {
	path := writeFile(t, "vars.toml", "host = \"localhost\"\nport = \"27017\"\n")

	got, err := Load(Sources{VarFiles: []string{path}})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if got["host"] != "localhost" || got["port"] != "27017" {
		t.Errorf("vars = %v, want TOML values loaded", got)
	}
}

func TestLoad_UnsupportedVarFile(t *testing.T) {
	path := writeFile(t, "vars.yaml", "host: localhost\n")

	_, err := Load(Sources{VarFiles: []string{path}})
	if err == nil {
		t.Fatal("expected error for unsupported variables file extension")
	}
}

func TestLoad_MissingVarFile(t *testing.T) {
	_, err := Load(Sources{VarFiles: []string{filepath.Join(t.TempDir(), "absent.json")}})
	if err == nil {
		t.Fatal("expected error for missing variables file")
	}
}

func TestLoad_Precedence(t *testing.T) {
	envFile := writeFile(t, "test.env", "KEY=from-env-file\nONLY_ENV=1\n")
	varFile := writeFile(t, "vars.json", `{"KEY": "from-var-file", "ONLY_VARS": "2"}`)

	got, err := Load(Sources{
		EnvFiles: []string{envFile},
		VarFiles: []string{varFile},
		Sets:     []string{"KEY=from-set"},
	})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if got["KEY"] != "from-set" {
		t.Errorf("vars[KEY] = %q, want --set to win", got["KEY"])
	}
	if got["ONLY_ENV"] != "1" || got["ONLY_VARS"] != "2" {
		t.Errorf("vars = %v, want non-conflicting keys from every source", got)
	}
}

func TestLoad_ProcessEnv(t *testing.T) {
	t.Setenv("SUBTEXT_TEST_VAR", "from-process")

	got, err := Load(Sources{Env: true})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if got["SUBTEXT_TEST_VAR"] != "from-process" {
		t.Errorf("vars[SUBTEXT_TEST_VAR] = %q, want %q", got["SUBTEXT_TEST_VAR"], "from-process")
	}
}
