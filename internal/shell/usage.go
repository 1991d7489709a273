package shell

// Usage is printed by the help command.
const Usage = `Usage: srtsh [SRT_FILENAME]
    Commands:
        EX: load 'SRT_FILENAME'
        EX: interval 90
        EX: rewind|u 50 5000
        EX: forward|f 50 5000
        EX: remove 50
        EX: save
        EX: show|s 50
        EX: showall
        EX: list
        EX: search TERM
        EX: help|h
        EX: exit`
