// Copyright 2025 Dimitrij Drus <dadrus@gmx.de>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package logging

import "github.com/rs/zerolog"

// SyslogLevel is the numeric severity GELF expects in the "level" field.
type SyslogLevel int8

const (
	Emergency SyslogLevel = iota
	Alert
	Critical
	Error
	Warning
	Notice
	Informational
	Debugging
)

// nolint: gochecknoglobals
var (
	syslogLevels = map[zerolog.Level]SyslogLevel{
		zerolog.TraceLevel: Debugging,
		zerolog.DebugLevel: Debugging,
		zerolog.InfoLevel:  Informational,
		zerolog.WarnLevel:  Warning,
		zerolog.ErrorLevel: Error,
		zerolog.FatalLevel: Critical,
		zerolog.PanicLevel: Alert,
	}

	syslogLevelNames = [...]string{
		"emerg", "alert", "crit", "err", "warning", "notice", "info", "debug",
	}
)

func (l SyslogLevel) String() string {
	if l < Emergency || l > Debugging {
		return "unknown"
	}

	return syslogLevelNames[l]
}

func toSyslogLevel(level zerolog.Level) SyslogLevel {
	if sl, ok := syslogLevels[level]; ok {
		return sl
	}

	return Emergency
}

// syslogLevelHook adds the severity of leveled events. Events logged without a level
// are left as they are.
type syslogLevelHook struct{}

func (syslogLevelHook) Run(e *zerolog.Event, level zerolog.Level, _ string) {
	if level != zerolog.NoLevel {
		e.Int8("level", int8(toSyslogLevel(level)))
	}
}
