package pargs

const zshCompletionTemplate = `#compdef %s

_%s() {
    local -a opts
    opts=(%s)

    if [[ "$words[CURRENT]" == -* ]]; then
        compadd -a opts
        return
    fi

    _files
}

compdef _%s %s
`
