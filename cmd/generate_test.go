package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPackageFor(t *testing.T) {
	type args struct {
		flagPkg string
		dest    string
	}
	tests := []struct {
		name string
		args args
		want string
	}{
		{
			name: "explicit flag wins",
			args: args{flagPkg: "pb", dest: "riakpb/messages.go"},
			want: "pb",
		},
		{
			name: "destination directory name",
			args: args{dest: "riakpb/messages.go"},
			want: "riakpb",
		},
		{
			name: "dashed directory becomes valid identifier",
			args: args{dest: "riak-pb/messages.go"},
			want: "riak_pb",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := packageFor(tt.args.flagPkg, tt.args.dest); got != tt.want {
				t.Errorf("packageFor() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestModuleName(t *testing.T) {
	dir := t.TempDir()
	content := []byte("module github.com/vickyqiu/riak-pb\n\ngo 1.21\n")
	if err := os.WriteFile(filepath.Join(dir, "go.mod"), content, 0644); err != nil {
		t.Fatal(err)
	}

	mod, err := moduleName(dir)
	if err != nil {
		t.Fatalf("moduleName() error = %v", err)
	}
	if mod != "github.com/vickyqiu/riak-pb" {
		t.Errorf("moduleName() = %v", mod)
	}
}
