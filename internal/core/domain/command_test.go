package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/buildit/internal/core/domain"
)

func TestConfigureCommand(t *testing.T) {
	cfg := domain.Configuration{
		Mode:      domain.ModeConfigure,
		BuildType: "Debug",
		SourceDir: "/proj/",
		BuildDir:  "/proj/build/Debug/",
		ExtraArgs: []string{"-G", "Ninja"},
	}
	s := domain.DefaultSettings()
	s.Defines["ZLIB"] = "OFF"
	s.Defines["CMAKE_BUILD_TYPE"] = "Release"

	cmd := domain.ConfigureCommand(cfg, s)

	assert.Equal(t, "cmake", cmd.Name)
	assert.Equal(t, []string{
		"-S", "/proj/",
		"-B", "/proj/build/Debug/",
		"-DCMAKE_BUILD_TYPE=Debug",
		"-DCMAKE_EXPORT_COMPILE_COMMANDS=ON",
		"-DZLIB=OFF",
		"-G", "Ninja",
	}, cmd.Args)
	assert.Equal(t,
		"cmake -S /proj/ -B /proj/build/Debug/ -DCMAKE_BUILD_TYPE=Debug "+
			"-DCMAKE_EXPORT_COMPILE_COMMANDS=ON -DZLIB=OFF -G Ninja",
		cmd.String())
}

func TestBuildCommand(t *testing.T) {
	cfg := domain.Configuration{
		Mode:      domain.ModeBuild,
		BuildType: "Release",
		SourceDir: "/proj/",
		BuildDir:  "/proj/build/Release/",
		ExtraArgs: []string{"--", "-j8"},
	}
	s := domain.DefaultSettings()
	s.Environment["CC"] = "clang"

	cmd := domain.BuildCommand(cfg, s)

	assert.Equal(t, "cmake --build /proj/build/Release/ -- -j8", cmd.String())
	assert.Equal(t, map[string]string{"CC": "clang"}, cmd.Environment)
}
