package domain

import "runtime"

// Platform names the operating system the way version metadata does.
type Platform struct {
	Name string
	Arch string
}

func CurrentPlatform() Platform {
	return PlatformFor(runtime.GOOS, runtime.GOARCH)
}

func PlatformFor(goos, goarch string) Platform {
	p := Platform{Name: "linux", Arch: "64"}
	switch goos {
	case "darwin":
		p.Name = "osx"
	case "windows":
		p.Name = "windows"
	}
	switch goarch {
	case "386", "arm", "mips", "mipsle":
		p.Arch = "32"
	}
	return p
}
