package importer

import "github.com/saijayin/agenda/internal/week"

// SampleRows returns the built-in demo week: five RH tasks spread
// across the working days. They go through Reconcile like any
// imported file.
func SampleRows(anchorISO string) []Row {
	monday, _ := week.AddDays(anchorISO, 0)
	return []Row{
		{"Fecha": Text(monday), "Tarea": Text("Actualizar expedientes"), "Departamento": Text("RH"), "Responsable": Text("María"), "Progreso": Number(0), "Estado": Text("Pendiente"), "Prioridad": Text("Alta")},
		{"Día": Text("Martes"), "Tarea": Text("Revisión de incidencias"), "Departamento": Text("RH"), "Responsable": Text("Carlos"), "Progreso": Number(35), "Estado": Text("En progreso"), "Prioridad": Text("Media")},
		{"Día": Text("Miércoles"), "Tarea": Text("Capacitación (seguimiento)"), "Departamento": Text("RH"), "Responsable": Text("María"), "Progreso": Number(60), "Estado": Text("En progreso"), "Prioridad": Text("Baja")},
		{"Día": Text("Jueves"), "Tarea": Text("Reporte semanal a gerencia"), "Departamento": Text("RH"), "Responsable": Text("Ana"), "Progreso": Number(0), "Estado": Text("Pendiente"), "Prioridad": Text("Alta")},
		{"Día": Text("Viernes"), "Tarea": Text("Cierre de pendientes"), "Departamento": Text("RH"), "Responsable": Text("Carlos"), "Progreso": Number(100), "Estado": Text("Hecho"), "Prioridad": Text("Media")},
	}
}
