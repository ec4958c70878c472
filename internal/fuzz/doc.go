// Package fuzztests houses Go fuzz harnesses for the tungsten lexer. Its goal
// is to smoke test robustness and guard against panics or broken token
// streams on arbitrary inputs.
//
// Назначение: загружать байты в FileSet и прогонять их через лексер,
// проверяя инварианты спанов.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
//
// Зависимости: internal/source, internal/lexer, internal/diag, internal/testkit.

package fuzztests
