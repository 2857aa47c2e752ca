package cli

import (
	"context"
	"regexp"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/agbru/drills/internal/ui"
)

// negativeNumber matches tokens such as -2, -1.5 or -3e2 that pflag would
// otherwise read as shorthand flags.
var negativeNumber = regexp.MustCompile(`^-[0-9.]`)

// Execute runs the command tree for args. The theme is chosen before flag
// parsing so that flag errors honor NO_COLOR and --no-color too.
func Execute(ctx context.Context, env *Env, args []string) error {
	ui.InitTheme(env.Config.NoColor || slices.Contains(args, "--no-color"))
	root := NewRootCommand(env)
	root.SetArgs(protectNegativeNumbers(root, args))
	return root.ExecuteContext(ctx)
}

// protectNegativeNumbers inserts "--" before the first negative number so it
// and everything after it are positional. Flags that follow it are moved in
// front of the "--", together with their values.
func protectNegativeNumbers(root *cobra.Command, args []string) []string {
	cmd, _, err := root.Find(args)
	if err != nil {
		cmd = root
	}

	var head, moved, tail []string
	seenNegative := false
	for i := 0; i < len(args); i++ {
		a := args[i]
		switch {
		case a == "--":
			if !seenNegative {
				return args
			}
			tail = append(tail, args[i+1:]...)
			i = len(args)
		case negativeNumber.MatchString(a):
			seenNegative = true
			tail = append(tail, a)
		case strings.HasPrefix(a, "-") && len(a) > 1:
			group := []string{a}
			if flagTakesValue(cmd, a) && i+1 < len(args) {
				i++
				group = append(group, args[i])
			}
			if seenNegative {
				moved = append(moved, group...)
			} else {
				head = append(head, group...)
			}
		case seenNegative:
			tail = append(tail, a)
		default:
			head = append(head, a)
		}
	}
	if !seenNegative {
		return args
	}

	out := make([]string, 0, len(args)+1)
	out = append(out, head...)
	out = append(out, moved...)
	out = append(out, "--")
	return append(out, tail...)
}

// flagTakesValue reports whether tok names a flag of cmd that consumes the
// next token as its value.
func flagTakesValue(cmd *cobra.Command, tok string) bool {
	name := strings.TrimLeft(tok, "-")
	if strings.Contains(name, "=") {
		return false
	}
	var f *pflag.Flag
	for _, fs := range []*pflag.FlagSet{cmd.Flags(), cmd.PersistentFlags(), cmd.InheritedFlags()} {
		if strings.HasPrefix(tok, "--") {
			f = fs.Lookup(name)
		} else if len(name) == 1 {
			f = fs.ShorthandLookup(name)
		}
		if f != nil {
			break
		}
	}
	return f != nil && f.NoOptDefVal == ""
}
