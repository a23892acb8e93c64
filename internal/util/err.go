package util

type BmainCmdError = int

const (
	ErrorSuccess       BmainCmdError = 0
	ErrorCmdArg        BmainCmdError = 1
	ErrorOutOfCapacity BmainCmdError = 2
	ErrorConfig        BmainCmdError = 3
)
