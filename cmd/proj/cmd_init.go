package main

import "fmt"

type InitCmd struct{}

func (cmd *InitCmd) Run(g *Globals) error { //nolint:unparam // error required by kong interface
	fmt.Fprint(g.Out, shellScript)
	return nil
}

const shellScript = `# proj shell integration
# Add to ~/.bashrc or ~/.zshrc: eval "$(proj init)"

proj() {
    case "$1" in
        cd)
            shift
            if [ $# -eq 0 ]; then
                dir="$(command proj open --print)" || return 1
            else
                dir="$(command proj show --path "$@" 2>&1)"
                if [ $? -ne 0 ]; then
                    echo "proj: $dir" >&2
                    return 1
                fi
            fi
            [ -z "$dir" ] && return 0
            if [ ! -d "$dir" ]; then
                echo "proj: path no longer exists: $dir" >&2
                return 1
            fi
            builtin cd -- "$dir"
            ;;
        *)
            command proj "$@"
            ;;
    esac
}
`
