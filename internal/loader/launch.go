package loader

import (
	"fmt"
	"strings"

	"github.com/bnema/mcli/internal/domain"
)

// substitute replaces ${name} placeholders. Unknown placeholders are kept.
func substitute(templates []string, values map[string]string) []string {
	pairs := make([]string, 0, len(values)*2)
	for name, value := range values {
		pairs = append(pairs, "${"+name+"}", value)
	}
	replacer := strings.NewReplacer(pairs...)

	out := make([]string, len(templates))
	for i, template := range templates {
		out[i] = replacer.Replace(template)
	}
	return out
}

func joinClasspath(entries []string) string {
	parts := make([]string, 0, len(entries))
	for _, entry := range entries {
		entry = strings.Trim(entry, ClasspathSeparator)
		if entry != "" {
			parts = append(parts, entry)
		}
	}
	return strings.Join(parts, ClasspathSeparator)
}

// Command assembles the game process: jvm arguments, main class and game
// options, run by the java component or, when a wrapper is configured, by
// the wrapper followed by a literal java.
func Command(l Launcher, state domain.InstanceState, instanceDir string, player domain.Player) (domain.ProcessSpec, error) {
	java, err := state.Java()
	if err != nil {
		return domain.ProcessSpec{}, domain.Wrap(domain.CategoryLaunch, err)
	}

	classpath, err := l.Classpath()
	if err != nil {
		return domain.ProcessSpec{}, err
	}
	jvmArgs, err := l.JVMArguments(classpath)
	if err != nil {
		return domain.ProcessSpec{}, err
	}
	gameArgs, err := l.GameOptions(player)
	if err != nil {
		return domain.ProcessSpec{}, err
	}
	mainClass := l.MainClass()
	if mainClass == "" {
		return domain.ProcessSpec{}, domain.Wrap(domain.CategoryLaunch, fmt.Errorf("mainClass: %w", domain.ErrFieldNotFound))
	}

	args := make([]string, 0, len(jvmArgs)+len(gameArgs)+1)
	args = append(args, jvmArgs...)
	args = append(args, mainClass)
	args = append(args, gameArgs...)

	spec := domain.ProcessSpec{
		Path:      java.Path,
		Args:      args,
		Dir:       instanceDir,
		PreLaunch: state.PreLaunch,
	}
	if wrapper := strings.Fields(state.Wrapper); len(wrapper) > 0 {
		spec.Path = wrapper[0]
		spec.Args = append(append(wrapper[1:], "java"), args...)
	}
	return spec, nil
}
