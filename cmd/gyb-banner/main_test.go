package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/andrewkroh/go-gyb/banner"
)

func noEnv(string) string { return "" }

func TestRun(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode int
		want     []string
	}{
		{
			name: "default style",
			args: []string{"--filename", "Foo"},
			want: []string{"// Auto-generated file: Foo.swift", "// Generated by GYB"},
		},
		{
			name: "python preset",
			args: []string{"--filename", "gen", "--style", "python"},
			want: []string{"# Auto-generated file: gen.py"},
		},
		{
			name: "go header",
			args: []string{"--filename", "models", "--style", "go", "--go-package", "models"},
			want: []string{"// Code generated by GYB. DO NOT EDIT.", "package models"},
		},
		{
			name:     "missing filename",
			args:     nil,
			wantCode: 2,
		},
		{
			name:     "unknown preset",
			args:     []string{"--filename", "x", "--style", "cobol"},
			wantCode: 1,
		},
		{
			name:     "bad package",
			args:     []string{"--filename", "x", "--go-package", "my-pkg"},
			wantCode: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := run(context.Background(), tt.args, &stdout, &stderr, noEnv)
			if code != tt.wantCode {
				t.Fatalf("exit code = %d, want %d; stderr: %s", code, tt.wantCode, stderr.String())
			}
			for _, line := range tt.want {
				if !strings.Contains(stdout.String(), line+"\n") {
					t.Errorf("missing %q in:\n%s", line, stdout.String())
				}
			}
			if tt.wantCode != 0 && !strings.Contains(stderr.String(), "error: ") {
				t.Errorf("stderr = %q", stderr.String())
			}
		})
	}
}

func TestRun_MatchesLibrary(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run(context.Background(), []string{"--filename", "Foo"}, &stdout, &stderr, noEnv); code != 0 {
		t.Fatalf("exit code = %d; stderr: %s", code, stderr.String())
	}
	if got, want := stdout.String(), banner.AutogeneratedWarning("Foo"); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}
