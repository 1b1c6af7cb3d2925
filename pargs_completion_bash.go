package pargs

const bashCompletionTemplate = `# bash completion for %s

_%s_completions()
{
    local cur opts
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    opts="%s"

    if [[ "$cur" == -* ]]; then
        COMPREPLY=($(compgen -W "${opts}" -- "${cur}"))
        return
    fi

    COMPREPLY=($(compgen -f -- "${cur}"))
}

complete -o default -F _%s_completions %s
`
